package omada

import (
	"context"
	"errors"
	"net/http"
	"testing"
)

func TestMACEqual(t *testing.T) {
	cases := []struct {
		a, b string
		want bool
	}{
		{"AA-BB-CC-DD-EE-FF", "aa:bb:cc:dd:ee:ff", true},
		{"aabb.ccdd.eeff", "AA-BB-CC-DD-EE-FF", true},
		{"aabbccddeeff", "AA-BB-CC-DD-EE-FF", true},
		{"AA-BB-CC-DD-EE-FF", "AA-BB-CC-DD-EE-00", false},
		{"not-a-mac", "not-a-mac", false},
		{"", "", false},
	}
	for _, tc := range cases {
		if got := macEqual(tc.a, tc.b); got != tc.want {
			t.Errorf("macEqual(%q, %q) = %v, want %v", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestFindOneMatchesEitherIdentifier(t *testing.T) {
	devices := []Device{
		{MAC: "AA-BB-CC-DD-EE-01", Name: "lobby-ap"},
		{MAC: "AA-BB-CC-DD-EE-02", Name: "office-ap"},
	}
	fetch := func(context.Context) ([]Device, error) { return devices, nil }
	ctx := context.Background()

	byMAC, err := findOne(ctx, fetch, func(d *Device) bool {
		return macEqual(d.MAC, "aa:bb:cc:dd:ee:02")
	})
	if err != nil {
		t.Fatalf("findOne by MAC: %v", err)
	}
	if byMAC.Name != "office-ap" {
		t.Fatalf("byMAC.Name = %q, want office-ap", byMAC.Name)
	}

	byName, err := findOne(ctx, fetch, func(d *Device) bool { return d.Name == "lobby-ap" })
	if err != nil {
		t.Fatalf("findOne by name: %v", err)
	}
	if byName.MAC != "AA-BB-CC-DD-EE-01" {
		t.Fatalf("byName.MAC = %q, want AA-BB-CC-DD-EE-01", byName.MAC)
	}

	_, err = findOne(ctx, fetch, func(d *Device) bool { return false })
	if !IsNotFound(err) {
		t.Fatalf("error = %v, want ErrNotFound", err)
	}
}

func TestGetDeviceResolvesIdentifiers(t *testing.T) {
	var grants int32
	mux := http.NewServeMux()
	serveTokens(mux, &grants)
	mux.HandleFunc("/openapi/v1/cid123/sites/s1/devices", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, 0, "", map[string]any{
			"totalRows": 2,
			"data": []map[string]any{
				{"mac": "AA-BB-CC-00-00-01", "name": "ap-1", "type": "ap", "model": "EAP610"},
				{"mac": "AA-BB-CC-00-00-02", "name": "ap-2", "type": "ap", "model": "EAP650"},
			},
		})
	})
	s := newTestService(t, mux)
	ctx := context.Background()

	d, err := s.GetDevice(ctx, "s1", "aa:bb:cc:00:00:02")
	if err != nil {
		t.Fatalf("GetDevice by MAC: %v", err)
	}
	if d.Name != "ap-2" {
		t.Fatalf("device name = %q, want ap-2", d.Name)
	}

	d, err = s.GetDevice(ctx, "s1", "AP-1")
	if err != nil {
		t.Fatalf("GetDevice by name: %v", err)
	}
	if d.MAC != "AA-BB-CC-00-00-01" {
		t.Fatalf("device MAC = %q, want AA-BB-CC-00-00-01", d.MAC)
	}

	_, err = s.GetDevice(ctx, "s1", "no-such-device")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound", err)
	}
}

func TestGetClientResolvesByIP(t *testing.T) {
	var grants int32
	mux := http.NewServeMux()
	serveTokens(mux, &grants)
	mux.HandleFunc("/openapi/v1/cid123/sites/s1/clients", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, 0, "", map[string]any{
			"totalRows": 1,
			"data": []map[string]any{
				{"mac": "DE-AD-BE-EF-00-01", "name": "laptop", "ip": "10.0.0.11"},
			},
		})
	})
	s := newTestService(t, mux)
	ctx := context.Background()

	c, err := s.GetClient(ctx, "s1", "10.0.0.11")
	if err != nil {
		t.Fatalf("GetClient by IP: %v", err)
	}
	if c.MAC != "DE-AD-BE-EF-00-01" {
		t.Fatalf("client MAC = %q, want DE-AD-BE-EF-00-01", c.MAC)
	}

	_, err = s.GetClient(ctx, "s1", "10.9.9.9")
	if !IsNotFound(err) {
		t.Fatalf("error = %v, want ErrNotFound", err)
	}
}
