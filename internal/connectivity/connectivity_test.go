package connectivity

import (
	"errors"
	"net"
	"testing"
	"time"
)

func TestNetProber_Loopback(t *testing.T) {
	p := NewNetProber("127.0.0.1:9")

	if !p.IsConnected() {
		t.Error("IsConnected() = false for loopback route, want true")
	}
}

func TestNetProber_InvalidAddress(t *testing.T) {
	p := NewNetProber("not an address")

	if p.IsConnected() {
		t.Error("IsConnected() = true for invalid address, want false")
	}
}

func TestNetProber_DialError(t *testing.T) {
	var gotNetwork, gotAddr string
	p := NewNetProber("192.0.2.1:53")
	p.dial = func(network, address string, _ time.Duration) (net.Conn, error) {
		gotNetwork, gotAddr = network, address
		return nil, errors.New("network is unreachable")
	}

	if p.IsConnected() {
		t.Error("IsConnected() = true on dial error, want false")
	}
	if gotNetwork != "udp" || gotAddr != "192.0.2.1:53" {
		t.Errorf("dialed %s %s, want udp 192.0.2.1:53", gotNetwork, gotAddr)
	}
}

func TestNetProber_ClosesConnection(t *testing.T) {
	client, server := net.Pipe()
	defer server.Close()

	p := NewNetProber("192.0.2.1:53")
	p.dial = func(_, _ string, _ time.Duration) (net.Conn, error) {
		return client, nil
	}

	if !p.IsConnected() {
		t.Fatal("IsConnected() = false, want true")
	}
	if _, err := client.Write([]byte{0}); err == nil {
		t.Error("probe connection was not closed")
	}
}

func TestMock_Script(t *testing.T) {
	m := NewMock(false, false, true)

	got := []bool{m.IsConnected(), m.IsConnected(), m.IsConnected(), m.IsConnected()}
	want := []bool{false, false, true, true}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("call %d = %v, want %v", i, got[i], want[i])
		}
	}
	if m.Calls() != 4 {
		t.Errorf("Calls() = %d, want 4", m.Calls())
	}
}

func TestNetProber_AnyAddressIsEnough(t *testing.T) {
	client, server := net.Pipe()
	defer server.Close()

	var dialed []string
	p := NewNetProber("1.1.1.1:53", "[2606:4700:4700::1111]:53")
	p.dial = func(_, address string, _ time.Duration) (net.Conn, error) {
		dialed = append(dialed, address)
		if address == "1.1.1.1:53" {
			return nil, errors.New("network is unreachable")
		}
		return client, nil
	}

	if !p.IsConnected() {
		t.Error("IsConnected() = false with an IPv6 route, want true")
	}
	if len(dialed) != 2 {
		t.Errorf("dialed %v, want both addresses", dialed)
	}
}

func TestNetProber_StopsAtFirstRoute(t *testing.T) {
	client, server := net.Pipe()
	defer server.Close()

	calls := 0
	p := NewNetProber("1.1.1.1:53", "[2606:4700:4700::1111]:53")
	p.dial = func(_, _ string, _ time.Duration) (net.Conn, error) {
		calls++
		return client, nil
	}

	if !p.IsConnected() {
		t.Error("IsConnected() = false, want true")
	}
	if calls != 1 {
		t.Errorf("dial calls = %d, want 1", calls)
	}
}

func TestNetProber_NoAddresses(t *testing.T) {
	if NewNetProber().IsConnected() {
		t.Error("IsConnected() = true without probe addresses, want false")
	}
}
