package domain

import "testing"

func mustName(t *testing.T, raw string) InterfaceName {
	t.Helper()
	name, err := ParseInterfaceName(raw)
	if err != nil {
		t.Fatalf("ParseInterfaceName(%q): %v", raw, err)
	}
	return name
}

func TestHealthWorse(t *testing.T) {
	cases := []struct {
		a, b, want Health
	}{
		{HealthHealthy, HealthDegraded, HealthDegraded},
		{HealthDegraded, HealthHealthy, HealthDegraded},
		{HealthEmpty, HealthUnreachable, HealthUnreachable},
		{HealthHealthy, HealthHealthy, HealthHealthy},
		{HealthUnreachable, HealthEmpty, HealthUnreachable},
	}
	for _, tc := range cases {
		if got := tc.a.Worse(tc.b); got != tc.want {
			t.Errorf("%v.Worse(%v) = %v, want %v", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestClassifiedSnapshotWorst(t *testing.T) {
	eth0 := mustName(t, "eth0")
	wlan0 := mustName(t, "wlan0")
	lo := mustName(t, "lo")

	t.Run("loopback excluded from aggregation", func(t *testing.T) {
		c := &ClassifiedSnapshot{
			NetworkSnapshot: NetworkSnapshot{
				Interfaces: []Interface{
					{Name: eth0, Kind: KindEthernet, State: OperUp},
					{Name: lo, Kind: KindLoopback, State: OperUp},
				},
			},
			HealthByInterface: map[InterfaceName]Health{
				eth0: HealthHealthy,
				lo:   HealthUnreachable,
			},
		}
		if got := c.Worst(); got != HealthHealthy {
			t.Errorf("expected healthy, got %v", got)
		}
	})

	t.Run("worst across displayable interfaces", func(t *testing.T) {
		c := &ClassifiedSnapshot{
			NetworkSnapshot: NetworkSnapshot{
				Interfaces: []Interface{
					{Name: eth0, Kind: KindEthernet, State: OperUp},
					{Name: wlan0, Kind: KindWiFi, State: OperUp},
				},
			},
			HealthByInterface: map[InterfaceName]Health{
				eth0:  HealthHealthy,
				wlan0: HealthDegraded,
			},
		}
		if got := c.Worst(); got != HealthDegraded {
			t.Errorf("expected degraded, got %v", got)
		}
	})

	t.Run("no displayable interfaces reports empty", func(t *testing.T) {
		c := &ClassifiedSnapshot{
			NetworkSnapshot: NetworkSnapshot{
				Interfaces: []Interface{{Name: lo, Kind: KindLoopback, State: OperUp}},
			},
			HealthByInterface: map[InterfaceName]Health{lo: HealthHealthy},
		}
		if got := c.Worst(); got != HealthEmpty {
			t.Errorf("expected empty, got %v", got)
		}
	})
}

func TestActiveCount(t *testing.T) {
	eth0 := mustName(t, "eth0")
	wlan0 := mustName(t, "wlan0")
	dock := mustName(t, "docker0")

	c := &ClassifiedSnapshot{
		NetworkSnapshot: NetworkSnapshot{
			Interfaces: []Interface{
				{Name: eth0, Kind: KindEthernet, State: OperUp},
				{Name: wlan0, Kind: KindWiFi, State: OperUp},
				{Name: dock, Kind: KindOther, State: OperUp},
			},
		},
		HealthByInterface: map[InterfaceName]Health{
			eth0:  HealthHealthy,
			wlan0: HealthDegraded,
			dock:  HealthEmpty,
		},
	}
	if got := c.ActiveCount(); got != 2 {
		t.Errorf("expected 2 active interfaces, got %d", got)
	}
}
