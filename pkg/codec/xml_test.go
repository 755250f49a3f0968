//go:build !smedia_omit_xml

package codec

import "testing"

type xmlTarget struct {
	Test bool   `xml:"test"`
	Name string `xml:"name"`
}

// TestXMLMarshal verifies the serialize capability.
func TestXMLMarshal(t *testing.T) {
	c, _ := Get(XML)
	m, ok := c.(Marshaler)
	if !ok {
		t.Fatal("XML codec does not marshal")
	}

	data, err := m.Marshal(xmlTarget{Test: true, Name: "smedia"})
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	if got, want := string(data), "<xmlTarget><test>true</test><name>smedia</name></xmlTarget>"; got != want {
		t.Errorf("Marshal() = %q, want %q", got, want)
	}
}

// TestXMLIsSerializeOnly verifies the codec exposes no decode
// capability and therefore never wins decode resolution: an XML
// Content-Type falls through to the default codec.
func TestXMLIsSerializeOnly(t *testing.T) {
	c, _ := Get(XML)
	if _, ok := c.(Unmarshaler); ok {
		t.Fatal("XML codec unexpectedly decodes")
	}

	for _, mime := range []string{"application/xml", "text/xml", "application/vnd.report+xml"} {
		if got := Resolve(mime, DirectionEncode); got != XML {
			t.Errorf("Resolve(%q, encode) = %q, want %q", mime, got, XML)
		}
		if got := Resolve(mime, DirectionDecode); got != Default {
			t.Errorf("Resolve(%q, decode) = %q, want %q", mime, got, Default)
		}
	}
}
