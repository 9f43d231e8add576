package cmd_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"freebox-gate/cmd"
	"freebox-gate/internal/freebox"
	"freebox-gate/internal/freebox/freeboxfakes"
	"freebox-gate/internal/hub"
	"freebox-gate/internal/state"
	"freebox-gate/internal/wifiswitch"

	"go.uber.org/zap"
)

func newTestHub(t *testing.T) (*hub.Hub, *freeboxfakes.FakeClient) {
	t.Helper()
	fakeClient := &freeboxfakes.FakeClient{}
	h := hub.New(zap.NewNop())
	h.AddEntities(wifiswitch.New(fakeClient, true))
	return h, fakeClient
}

func TestStatusEndpoint_ReturnsEntitySnapshots(t *testing.T) {
	h, _ := newTestHub(t)
	ts := httptest.NewServer(cmd.NewAPIHandler(h, zap.NewNop()))
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/status")
	if err != nil {
		t.Fatalf("HTTP GET failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", resp.StatusCode)
	}

	var got []state.EntityState
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("decode JSON: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 entity, got %d", len(got))
	}
	if got[0].Name != wifiswitch.Name || got[0].State != wifiswitch.StateOff || !got[0].Available {
		t.Errorf("unexpected snapshot %+v", got[0])
	}
}

func TestSwitchEndpoint_ForwardsCommands(t *testing.T) {
	h, fakeClient := newTestHub(t)
	ts := httptest.NewServer(cmd.NewAPIHandler(h, zap.NewNop()))
	defer ts.Close()

	for i, action := range []string{"on", "off"} {
		resp, err := http.Post(ts.URL+"/switch/wifi/"+action, "application/json", nil)
		if err != nil {
			t.Fatalf("HTTP POST failed: %v", err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusAccepted {
			t.Fatalf("expected 202 for %s, got %d", action, resp.StatusCode)
		}
		_, cfg := fakeClient.SetWifiGlobalConfigArgsForCall(i)
		if cfg.Enabled != (action == "on") {
			t.Errorf("expected enabled=%v for %s", action == "on", action)
		}
	}

	sw, _ := h.Entity(wifiswitch.Name)
	if sw.State() != wifiswitch.StateOff {
		t.Errorf("commands must not change state before a poll, got %s", sw.State())
	}
}

func TestSwitchEndpoint_Errors(t *testing.T) {
	h, fakeClient := newTestHub(t)
	ts := httptest.NewServer(cmd.NewAPIHandler(h, zap.NewNop()))
	defer ts.Close()

	resp, err := http.Post(ts.URL+"/switch/wifi/toggle", "application/json", nil)
	if err != nil {
		t.Fatalf("HTTP POST failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("expected 400 for unknown action, got %d", resp.StatusCode)
	}

	fakeClient.SetWifiGlobalConfigReturns(&freebox.APIError{Path: "wifi/config/", StatusCode: 403, Code: "insufficient_rights", Msg: "Insufficient rights"})
	resp, err = http.Post(ts.URL+"/switch/wifi/on", "application/json", nil)
	if err != nil {
		t.Fatalf("HTTP POST failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadGateway {
		t.Errorf("expected 502 on device error, got %d", resp.StatusCode)
	}

	empty := httptest.NewServer(cmd.NewAPIHandler(hub.New(zap.NewNop()), zap.NewNop()))
	defer empty.Close()
	resp, err = http.Post(empty.URL+"/switch/wifi/on", "application/json", nil)
	if err != nil {
		t.Fatalf("HTTP POST failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusServiceUnavailable {
		t.Errorf("expected 503 without a switch, got %d", resp.StatusCode)
	}

	if fakeClient.SetWifiGlobalConfigCallCount() != 1 {
		t.Errorf("expected exactly one command to reach the device, got %d", fakeClient.SetWifiGlobalConfigCallCount())
	}
}
