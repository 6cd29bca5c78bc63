package log

import "testing"

func TestEnumStrings(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"DirectionIn", DirectionIn.String(), "IN"},
		{"DirectionOut", DirectionOut.String(), "OUT"},
		{"Direction(9)", Direction(9).String(), "UNKNOWN"},
		{"LayerTransport", LayerTransport.String(), "TRANSPORT"},
		{"LayerWire", LayerWire.String(), "WIRE"},
		{"LayerSession", LayerSession.String(), "SESSION"},
		{"Layer(9)", Layer(9).String(), "UNKNOWN"},
		{"CategoryMessage", CategoryMessage.String(), "MESSAGE"},
		{"CategoryState", CategoryState.String(), "STATE"},
		{"CategoryError", CategoryError.String(), "ERROR"},
		{"Category(1)", Category(1).String(), "UNKNOWN"},
		{"RoleClient", RoleClient.String(), "CLIENT"},
		{"RoleTower", RoleTower.String(), "TOWER"},
		{"Role(5)", Role(5).String(), "UNKNOWN"},
		{"StateEntityConnection", StateEntityConnection.String(), "CONNECTION"},
		{"StateEntitySession", StateEntitySession.String(), "SESSION"},
		{"StateEntity(7)", StateEntity(7).String(), "UNKNOWN"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}
}
