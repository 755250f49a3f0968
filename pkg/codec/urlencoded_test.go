//go:build !smedia_omit_urlencoded

package codec

import "testing"

type formTarget struct {
	Test bool   `json:"test"`
	Name string `json:"name"`
}

// TestURLEncodedMarshal verifies encoding uses json tag names and the
// stable, sorted query rendering.
func TestURLEncodedMarshal(t *testing.T) {
	c, _ := Get(URLEncoded)
	m := c.(Marshaler)

	data, err := m.Marshal(formTarget{Test: true, Name: "smedia"})
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	if got, want := string(data), "name=smedia&test=true"; got != want {
		t.Errorf("Marshal() = %q, want %q", got, want)
	}
}

// TestURLEncodedRoundTrip verifies a flat struct survives the format.
func TestURLEncodedRoundTrip(t *testing.T) {
	c, _ := Get(URLEncoded)
	m := c.(Marshaler)
	u := c.(Unmarshaler)

	in := formTarget{Test: true, Name: "a b&c"}
	data, err := m.Marshal(in)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}

	var out formTarget
	if err := u.Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal(%q) error: %v", data, err)
	}
	if out != in {
		t.Errorf("round trip = %+v, want %+v", out, in)
	}
}

// TestURLEncodedUnknownKeys verifies extra form fields are ignored
// rather than rejected.
func TestURLEncodedUnknownKeys(t *testing.T) {
	u := mustGetUnmarshaler(t, URLEncoded)

	var out formTarget
	if err := u.Unmarshal([]byte("test=true&extra=1"), &out); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if !out.Test {
		t.Error("Test field not decoded")
	}
}

// TestURLEncodedClassify verifies conversion failures carry the form
// key and unparsable bodies fall into the format bucket.
func TestURLEncodedClassify(t *testing.T) {
	u := mustGetUnmarshaler(t, URLEncoded)

	var out formTarget
	err := u.Unmarshal([]byte("test=notabool"), &out)
	if err == nil {
		t.Fatal("Unmarshal() succeeded, want conversion error")
	}
	kind, path := u.Classify(err)
	if kind != KindData {
		t.Errorf("Classify() kind = %q, want %q (err: %v)", kind, KindData, err)
	}
	if path != "test" {
		t.Errorf("Classify() path = %q, want %q", path, "test")
	}

	err = u.Unmarshal([]byte("test=%zz"), &out)
	if err == nil {
		t.Fatal("Unmarshal() succeeded, want parse error")
	}
	kind, path = u.Classify(err)
	if kind != KindFormat {
		t.Errorf("Classify() kind = %q, want %q (err: %v)", kind, KindFormat, err)
	}
	if path != "" {
		t.Errorf("Classify() path = %q, want empty", path)
	}
}
