package omada

import "encoding/json"

// apiResponse is the controller's uniform response envelope. Every
// endpoint, the token grants included, wraps its payload this way
// regardless of HTTP status.
type apiResponse struct {
	ErrorCode int             `json:"errorCode"`
	Msg       string          `json:"msg"`
	Result    json.RawMessage `json:"result,omitempty"`
}

// tokenResult is the result payload of both authorize grants.
type tokenResult struct {
	AccessToken  string `json:"accessToken"`
	TokenType    string `json:"tokenType"`
	ExpiresIn    int64  `json:"expiresIn"`
	RefreshToken string `json:"refreshToken"`
}

// pageResult is one page of a paged collection endpoint. TotalRows is a
// pointer because the controller may omit it entirely.
type pageResult struct {
	TotalRows   *int64          `json:"totalRows"`
	CurrentPage int             `json:"currentPage"`
	CurrentSize int             `json:"currentSize"`
	Data        json.RawMessage `json:"data"`
}

// Site is one administrative site on the controller.
type Site struct {
	ID   string `json:"siteId"`
	Name string `json:"name"`

	// Extra carries every field the controller returned that is not bound
	// above, preserved verbatim through a marshal round trip.
	Extra map[string]any `json:"-"`
}

// Device is one managed device (access point, switch, gateway) in a site.
type Device struct {
	MAC   string `json:"mac"`
	Name  string `json:"name"`
	Type  string `json:"type"`
	Model string `json:"model"`

	Extra map[string]any `json:"-"`
}

// Client is one client currently known to a site, wired or wireless.
type Client struct {
	MAC  string `json:"mac"`
	Name string `json:"name"`
	IP   string `json:"ip"`

	Extra map[string]any `json:"-"`
}

func (s *Site) UnmarshalJSON(data []byte) error {
	type plain Site
	var p plain
	extra, err := unmarshalWithExtra(data, &p, "siteId", "name")
	if err != nil {
		return err
	}
	*s = Site(p)
	s.Extra = extra
	return nil
}

func (s Site) MarshalJSON() ([]byte, error) {
	type plain Site
	return marshalWithExtra(plain(s), s.Extra)
}

func (d *Device) UnmarshalJSON(data []byte) error {
	type plain Device
	var p plain
	extra, err := unmarshalWithExtra(data, &p, "mac", "name", "type", "model")
	if err != nil {
		return err
	}
	*d = Device(p)
	d.Extra = extra
	return nil
}

func (d Device) MarshalJSON() ([]byte, error) {
	type plain Device
	return marshalWithExtra(plain(d), d.Extra)
}

func (c *Client) UnmarshalJSON(data []byte) error {
	type plain Client
	var p plain
	extra, err := unmarshalWithExtra(data, &p, "mac", "name", "ip")
	if err != nil {
		return err
	}
	*c = Client(p)
	c.Extra = extra
	return nil
}

func (c Client) MarshalJSON() ([]byte, error) {
	type plain Client
	return marshalWithExtra(plain(c), c.Extra)
}

// unmarshalWithExtra decodes data into dst and returns the fields dst's
// json tags did not claim. The controller's entity schemas are open-ended;
// unclaimed fields must survive, not be dropped.
func unmarshalWithExtra(data []byte, dst any, known ...string) (map[string]any, error) {
	if err := json.Unmarshal(data, dst); err != nil {
		return nil, err
	}
	var all map[string]any
	if err := json.Unmarshal(data, &all); err != nil {
		return nil, err
	}
	for _, k := range known {
		delete(all, k)
	}
	if len(all) == 0 {
		return nil, nil
	}
	return all, nil
}

// marshalWithExtra re-merges the extra-field bag into the typed fields.
// Typed fields win on key collision.
func marshalWithExtra(v any, extra map[string]any) ([]byte, error) {
	base, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	if len(extra) == 0 {
		return base, nil
	}
	merged := make(map[string]any, len(extra)+4)
	for k, val := range extra {
		merged[k] = val
	}
	var typed map[string]any
	if err := json.Unmarshal(base, &typed); err != nil {
		return nil, err
	}
	for k, val := range typed {
		merged[k] = val
	}
	return json.Marshal(merged)
}
