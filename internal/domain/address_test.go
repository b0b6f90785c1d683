package domain

import (
	"errors"
	"testing"
)

func TestParseMAC(t *testing.T) {
	t.Run("accepts colon separated", func(t *testing.T) {
		mac, err := ParseMAC("AA:BB:CC:DD:EE:FF")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := mac.String(); got != "aa:bb:cc:dd:ee:ff" {
			t.Errorf("expected canonical lowercase form, got %q", got)
		}
	})

	t.Run("accepts dash separated", func(t *testing.T) {
		mac, err := ParseMAC("aa-bb-cc-dd-ee-ff")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := mac.String(); got != "aa:bb:cc:dd:ee:ff" {
			t.Errorf("expected canonical form, got %q", got)
		}
	})

	t.Run("rejects malformed input", func(t *testing.T) {
		cases := []string{
			"not-a-mac",
			"",
			"aa:bb:cc:dd:ee",
			"aa:bb:cc:dd:ee:ff:00:11",
			"gg:bb:cc:dd:ee:ff",
			"aaa:bb:cc:dd:ee:f",
		}
		for _, raw := range cases {
			_, err := ParseMAC(raw)
			if err == nil {
				t.Errorf("expected error for %q", raw)
				continue
			}
			var invalid *InvalidFormatError
			if !errors.As(err, &invalid) {
				t.Errorf("expected InvalidFormatError for %q, got %T", raw, err)
			} else if invalid.Value != raw {
				t.Errorf("error should carry raw value %q, got %q", raw, invalid.Value)
			}
		}
	})

	t.Run("zero detection", func(t *testing.T) {
		mac, err := ParseMAC("00:00:00:00:00:00")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !mac.IsZero() {
			t.Error("expected all-zero MAC to report IsZero")
		}
	})

	t.Run("OUI prefix", func(t *testing.T) {
		mac, _ := ParseMAC("3c:22:fb:01:02:03")
		if got := mac.OUI(); got != "3C22FB" {
			t.Errorf("expected OUI 3C22FB, got %q", got)
		}
	})

	t.Run("byte-wise ordering", func(t *testing.T) {
		a, _ := ParseMAC("00:11:22:33:44:55")
		b, _ := ParseMAC("00:11:22:33:44:56")
		if a.Compare(b) >= 0 {
			t.Error("expected a < b")
		}
		if a.Compare(a) != 0 {
			t.Error("expected a == a")
		}
	})
}

func TestParseIP(t *testing.T) {
	t.Run("valid v4 and v6", func(t *testing.T) {
		for _, raw := range []string{"192.168.1.1", "10.0.0.254", "fe80::1", "2001:db8::42"} {
			if _, err := ParseIP(raw); err != nil {
				t.Errorf("unexpected error for %q: %v", raw, err)
			}
		}
	})

	t.Run("rejects malformed input", func(t *testing.T) {
		for _, raw := range []string{"999.999.1.1", "", "192.168.1", "bogus", "1.2.3.4.5"} {
			_, err := ParseIP(raw)
			if err == nil {
				t.Errorf("expected error for %q", raw)
				continue
			}
			var invalid *InvalidFormatError
			if !errors.As(err, &invalid) {
				t.Errorf("expected InvalidFormatError for %q, got %T", raw, err)
			}
		}
	})

	t.Run("v4 sorts before v6", func(t *testing.T) {
		v4, _ := ParseIP("255.255.255.255")
		v6, _ := ParseIP("::1")
		if v4.Compare(v6) >= 0 {
			t.Error("expected IPv4 to sort before IPv6")
		}
	})

	t.Run("numeric order within family", func(t *testing.T) {
		a, _ := ParseIP("192.168.1.2")
		b, _ := ParseIP("192.168.1.10")
		if a.Compare(b) >= 0 {
			t.Error("expected 192.168.1.2 < 192.168.1.10")
		}
	})

	t.Run("mapped form is unmapped", func(t *testing.T) {
		mapped, err := ParseIP("::ffff:192.168.1.1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		plain, _ := ParseIP("192.168.1.1")
		if mapped.Compare(plain) != 0 {
			t.Errorf("expected mapped form to equal plain v4, got %s", mapped)
		}
	})
}

func TestParseInterfaceName(t *testing.T) {
	t.Run("accepts typical names", func(t *testing.T) {
		for _, raw := range []string{"eth0", "wlan0", "lo", "enp3s0", "br-a1b2c3"} {
			name, err := ParseInterfaceName(raw)
			if err != nil {
				t.Errorf("unexpected error for %q: %v", raw, err)
				continue
			}
			if name.String() != raw {
				t.Errorf("expected %q, got %q", raw, name.String())
			}
		}
	})

	t.Run("rejects invalid names", func(t *testing.T) {
		cases := []string{"", "a name with spaces", "waytoolonginterfacename0", "bad/name"}
		for _, raw := range cases {
			if _, err := ParseInterfaceName(raw); err == nil {
				t.Errorf("expected error for %q", raw)
			}
		}
	})
}

func TestMapNeighborState(t *testing.T) {
	cases := []struct {
		raw  string
		want NeighborState
	}{
		{"REACHABLE", NeighborReachable},
		{"reachable", NeighborReachable},
		{"PERMANENT", NeighborReachable},
		{"NOARP", NeighborReachable},
		{"STALE", NeighborStale},
		{"DELAY", NeighborStale},
		{"PROBE", NeighborStale},
		{"FAILED", NeighborFailed},
		{"INCOMPLETE", NeighborFailed},
		{"SOMETHING_NEW", NeighborUnknown},
		{"", NeighborUnknown},
	}
	for _, tc := range cases {
		if got := MapNeighborState(tc.raw); got != tc.want {
			t.Errorf("MapNeighborState(%q) = %v, want %v", tc.raw, got, tc.want)
		}
	}
}
