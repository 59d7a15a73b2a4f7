package omada

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestDeviceExtraFieldsRoundTrip(t *testing.T) {
	src := []byte(`{"mac":"AA-BB-CC-00-00-01","name":"ap-1","type":"ap","model":"EAP610","uptime":86400,"cpuUtil":7,"radioSetting2g":{"channel":6}}`)

	var d Device
	if err := json.Unmarshal(src, &d); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if d.MAC != "AA-BB-CC-00-00-01" || d.Model != "EAP610" {
		t.Fatalf("typed fields not bound: %+v", d)
	}
	if _, ok := d.Extra["uptime"]; !ok {
		t.Fatalf("extra field uptime dropped: %v", d.Extra)
	}
	if _, ok := d.Extra["mac"]; ok {
		t.Fatal("typed field mac leaked into Extra")
	}

	out, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var got, want map[string]any
	if err := json.Unmarshal(out, &got); err != nil {
		t.Fatalf("unmarshal round trip: %v", err)
	}
	if err := json.Unmarshal(src, &want); err != nil {
		t.Fatalf("unmarshal source: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("round trip mismatch:\n got %v\nwant %v", got, want)
	}
}

func TestSiteWithoutExtraMarshalsFlat(t *testing.T) {
	out, err := json.Marshal(Site{ID: "s1", Name: "HQ"})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != `{"siteId":"s1","name":"HQ"}` {
		t.Fatalf("marshal = %s", out)
	}
}

func TestClientTypedFieldsWinOnCollision(t *testing.T) {
	c := Client{
		MAC:   "DE-AD-BE-EF-00-01",
		Name:  "laptop",
		IP:    "10.0.0.11",
		Extra: map[string]any{"ip": "9.9.9.9", "vlan": 30},
	}
	out, err := json.Marshal(c)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var got map[string]any
	if err := json.Unmarshal(out, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got["ip"] != "10.0.0.11" {
		t.Fatalf("ip = %v, want typed value 10.0.0.11", got["ip"])
	}
	if got["vlan"] != float64(30) {
		t.Fatalf("vlan = %v, want 30", got["vlan"])
	}
}
