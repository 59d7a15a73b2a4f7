package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"net/url"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/omada-tools/omada-mcp/pkg/omada"
)

// fakeInventory is an in-memory Inventory for exercising tool handlers
// without a controller.
type fakeInventory struct {
	sites   []omada.Site
	devices map[string][]omada.Device
	clients map[string][]omada.Client
	site    string
	pingErr error

	lastMethod string
	lastPath   string
	lastQuery  url.Values
	lastBody   any
	callResult json.RawMessage
	callErr    error
}

func (f *fakeInventory) ListSites(ctx context.Context) ([]omada.Site, error) {
	return f.sites, nil
}

func (f *fakeInventory) ListDevices(ctx context.Context, siteID string) ([]omada.Device, error) {
	return f.devices[siteID], nil
}

func (f *fakeInventory) ListClients(ctx context.Context, siteID string) ([]omada.Client, error) {
	return f.clients[siteID], nil
}

func (f *fakeInventory) GetDevice(ctx context.Context, siteID, identifier string) (*omada.Device, error) {
	for i := range f.devices[siteID] {
		d := &f.devices[siteID][i]
		if d.MAC == identifier || strings.EqualFold(d.Name, identifier) {
			return d, nil
		}
	}
	return nil, omada.ErrNotFound
}

func (f *fakeInventory) GetClient(ctx context.Context, siteID, identifier string) (*omada.Client, error) {
	for i := range f.clients[siteID] {
		c := &f.clients[siteID][i]
		if c.MAC == identifier || c.IP == identifier || strings.EqualFold(c.Name, identifier) {
			return c, nil
		}
	}
	return nil, omada.ErrNotFound
}

func (f *fakeInventory) Call(ctx context.Context, method, path string, query url.Values, body any) (json.RawMessage, error) {
	f.lastMethod = method
	f.lastPath = path
	f.lastQuery = query
	f.lastBody = body
	if f.callErr != nil {
		return nil, f.callErr
	}
	return f.callResult, nil
}

func (f *fakeInventory) Ping(ctx context.Context) error { return f.pingErr }
func (f *fakeInventory) SessionState() string           { return "authenticated" }
func (f *fakeInventory) ControllerID() string           { return "cid123" }
func (f *fakeInventory) DefaultSite() string            { return f.site }

func newTestServer(f *fakeInventory) *Server {
	return NewServer(f)
}

func toolRequest(args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	if res == nil || len(res.Content) == 0 {
		t.Fatal("tool result has no content")
	}
	tc, ok := res.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("content is %T, want mcp.TextContent", res.Content[0])
	}
	return tc.Text
}

func TestGetHealthReportsControllerAndSession(t *testing.T) {
	s := newTestServer(&fakeInventory{})

	res, err := s.handleGetHealth(context.Background(), toolRequest(nil))
	if err != nil {
		t.Fatalf("handleGetHealth: %v", err)
	}
	if res.IsError {
		t.Fatalf("unexpected error result: %s", resultText(t, res))
	}

	var out GetHealthOutput
	if err := json.Unmarshal([]byte(resultText(t, res)), &out); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if out.Status != "healthy" {
		t.Errorf("status = %q, want healthy", out.Status)
	}
	if out.Controller != "cid123" {
		t.Errorf("controller = %q, want cid123", out.Controller)
	}
	if out.Session != "authenticated" {
		t.Errorf("session = %q, want authenticated", out.Session)
	}
}

func TestGetHealthUnhealthyOnPingFailure(t *testing.T) {
	s := newTestServer(&fakeInventory{pingErr: errors.New("connection refused")})

	res, err := s.handleGetHealth(context.Background(), toolRequest(nil))
	if err != nil {
		t.Fatalf("handleGetHealth: %v", err)
	}

	var out GetHealthOutput
	if err := json.Unmarshal([]byte(resultText(t, res)), &out); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if out.Status != "unhealthy" {
		t.Errorf("status = %q, want unhealthy", out.Status)
	}
	if out.Error == "" {
		t.Error("expected error detail in unhealthy output")
	}
}

func TestListSitesTool(t *testing.T) {
	s := newTestServer(&fakeInventory{
		sites: []omada.Site{{ID: "s1", Name: "HQ"}, {ID: "s2", Name: "Branch"}},
	})

	res, err := s.handleListSites(context.Background(), toolRequest(nil))
	if err != nil {
		t.Fatalf("handleListSites: %v", err)
	}

	var out ListSitesOutput
	if err := json.Unmarshal([]byte(resultText(t, res)), &out); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if out.Count != 2 || len(out.Sites) != 2 {
		t.Fatalf("count = %d, sites = %d, want 2", out.Count, len(out.Sites))
	}
	if out.Sites[0].Name != "HQ" {
		t.Errorf("first site = %q, want HQ", out.Sites[0].Name)
	}
}

func TestListDevicesUsesDefaultSite(t *testing.T) {
	s := newTestServer(&fakeInventory{
		site: "s1",
		devices: map[string][]omada.Device{
			"s1": {{MAC: "AA-BB-CC-00-00-01", Name: "AP-1", Type: "ap"}},
		},
	})

	res, err := s.handleListDevices(context.Background(), toolRequest(nil))
	if err != nil {
		t.Fatalf("handleListDevices: %v", err)
	}

	var out ListDevicesOutput
	if err := json.Unmarshal([]byte(resultText(t, res)), &out); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if out.SiteID != "s1" {
		t.Errorf("site_id = %q, want s1", out.SiteID)
	}
	if out.Count != 1 {
		t.Errorf("count = %d, want 1", out.Count)
	}
}

func TestListDevicesSiteArgOverridesDefault(t *testing.T) {
	s := newTestServer(&fakeInventory{
		site: "s1",
		devices: map[string][]omada.Device{
			"s1": {{MAC: "AA-BB-CC-00-00-01", Name: "AP-1"}},
			"s2": {{MAC: "AA-BB-CC-00-00-02", Name: "SW-1"}, {MAC: "AA-BB-CC-00-00-03", Name: "GW-1"}},
		},
	})

	res, err := s.handleListDevices(context.Background(), toolRequest(map[string]any{"site_id": "s2"}))
	if err != nil {
		t.Fatalf("handleListDevices: %v", err)
	}

	var out ListDevicesOutput
	if err := json.Unmarshal([]byte(resultText(t, res)), &out); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if out.SiteID != "s2" || out.Count != 2 {
		t.Errorf("got site %q count %d, want s2 with 2 devices", out.SiteID, out.Count)
	}
}

func TestListClientsWithoutSiteOrDefaultIsError(t *testing.T) {
	s := newTestServer(&fakeInventory{})

	res, err := s.handleListClients(context.Background(), toolRequest(nil))
	if err != nil {
		t.Fatalf("handleListClients: %v", err)
	}
	if !res.IsError {
		t.Fatal("expected error result when no site is available")
	}
}

func TestGetDeviceNotFoundIsPayloadNotError(t *testing.T) {
	s := newTestServer(&fakeInventory{
		site:    "s1",
		devices: map[string][]omada.Device{"s1": {{MAC: "aa:bb:cc:00:00:01", Name: "AP-1"}}},
	})

	res, err := s.handleGetDevice(context.Background(), toolRequest(map[string]any{"identifier": "no-such-device"}))
	if err != nil {
		t.Fatalf("handleGetDevice: %v", err)
	}
	if res.IsError {
		t.Fatalf("miss should not be a protocol error: %s", resultText(t, res))
	}

	var out NotFoundOutput
	if err := json.Unmarshal([]byte(resultText(t, res)), &out); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if out.Found {
		t.Error("found = true, want false")
	}
	if out.Kind != "device" || out.Identifier != "no-such-device" {
		t.Errorf("got kind %q identifier %q", out.Kind, out.Identifier)
	}
}

func TestGetDeviceRequiresIdentifier(t *testing.T) {
	s := newTestServer(&fakeInventory{site: "s1"})

	res, err := s.handleGetDevice(context.Background(), toolRequest(nil))
	if err != nil {
		t.Fatalf("handleGetDevice: %v", err)
	}
	if !res.IsError {
		t.Fatal("expected error result for missing identifier")
	}
}

func TestGetClientByIP(t *testing.T) {
	s := newTestServer(&fakeInventory{
		site: "s1",
		clients: map[string][]omada.Client{
			"s1": {{MAC: "11:22:33:44:55:66", Name: "laptop", IP: "10.0.0.9"}},
		},
	})

	res, err := s.handleGetClient(context.Background(), toolRequest(map[string]any{"identifier": "10.0.0.9"}))
	if err != nil {
		t.Fatalf("handleGetClient: %v", err)
	}
	if res.IsError {
		t.Fatalf("unexpected error result: %s", resultText(t, res))
	}

	var out GetClientOutput
	if err := json.Unmarshal([]byte(resultText(t, res)), &out); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if out.Client == nil || out.Client.Name != "laptop" {
		t.Fatalf("client = %+v, want laptop", out.Client)
	}
}

func TestCallAPIExpandsPlaceholders(t *testing.T) {
	f := &fakeInventory{site: "s1", callResult: json.RawMessage(`{"ok":true}`)}
	s := newTestServer(f)

	res, err := s.handleCallAPI(context.Background(), toolRequest(map[string]any{
		"method": "get",
		"path":   "/openapi/v1/{omadacId}/sites/{siteId}/devices",
		"params": map[string]any{"page": "1"},
	}))
	if err != nil {
		t.Fatalf("handleCallAPI: %v", err)
	}
	if res.IsError {
		t.Fatalf("unexpected error result: %s", resultText(t, res))
	}

	if f.lastMethod != "GET" {
		t.Errorf("method = %q, want GET", f.lastMethod)
	}
	if want := "/openapi/v1/cid123/sites/s1/devices"; f.lastPath != want {
		t.Errorf("path = %q, want %q", f.lastPath, want)
	}
	if got := f.lastQuery.Get("page"); got != "1" {
		t.Errorf("page param = %q, want 1", got)
	}

	var out CallAPIOutput
	if err := json.Unmarshal([]byte(resultText(t, res)), &out); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if string(out.Result) != `{"ok":true}` {
		t.Errorf("result = %s", out.Result)
	}
}

func TestCallAPIPassesBody(t *testing.T) {
	f := &fakeInventory{site: "s1", callResult: json.RawMessage(`null`)}
	s := newTestServer(f)

	res, err := s.handleCallAPI(context.Background(), toolRequest(map[string]any{
		"method": "POST",
		"path":   "/openapi/v1/{omadacId}/sites/{siteId}/cmd/reboot",
		"body":   map[string]any{"mac": "AA-BB-CC-00-00-01"},
	}))
	if err != nil {
		t.Fatalf("handleCallAPI: %v", err)
	}
	if res.IsError {
		t.Fatalf("unexpected error result: %s", resultText(t, res))
	}

	body, ok := f.lastBody.(map[string]any)
	if !ok {
		t.Fatalf("body is %T, want map", f.lastBody)
	}
	if body["mac"] != "AA-BB-CC-00-00-01" {
		t.Errorf("body mac = %v", body["mac"])
	}
}

func TestCallAPIRejectsUnknownMethod(t *testing.T) {
	s := newTestServer(&fakeInventory{})

	res, err := s.handleCallAPI(context.Background(), toolRequest(map[string]any{
		"method": "TRACE",
		"path":   "/openapi/v1/{omadacId}/sites",
	}))
	if err != nil {
		t.Fatalf("handleCallAPI: %v", err)
	}
	if !res.IsError {
		t.Fatal("expected error result for unsupported method")
	}
}
