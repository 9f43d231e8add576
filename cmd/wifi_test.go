package cmd_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"freebox-gate/cmd"
	"freebox-gate/internal/config"
	"freebox-gate/internal/discovery"
	"freebox-gate/internal/freebox"
	"freebox-gate/internal/freebox/freeboxfakes"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestCommands(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Commands Suite")
}

var _ = Describe("Wifi Command", func() {
	var (
		fakeClient *freeboxfakes.FakeClient
		out        *bytes.Buffer
		target     config.Freebox
		ctx        context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		fakeClient = &freeboxfakes.FakeClient{}
		fakeClient.PermissionsReturns(freebox.Permissions{freebox.PermissionSettings: true}, nil)
		out = &bytes.Buffer{}
		target = config.Freebox{Host: "mafreebox.freebox.fr", Port: 443}
	})

	Describe("RunWifi", func() {
		It("prints the current state", func() {
			fakeClient.WifiGlobalConfigReturns(freebox.WifiConfig{Enabled: true}, nil)

			Expect(cmd.RunWifi(ctx, fakeClient, target, "status", out)).To(Succeed())

			_, host, port := fakeClient.OpenArgsForCall(0)
			Expect(host).To(Equal("mafreebox.freebox.fr"))
			Expect(port).To(Equal(443))
			Expect(fakeClient.SetWifiGlobalConfigCallCount()).To(Equal(0))
			Expect(fakeClient.CloseCallCount()).To(Equal(1))
			Expect(out.String()).To(Equal("Freebox WiFi: on\n"))
		})

		It("turns the wifi off and reports the polled state", func() {
			fakeClient.WifiGlobalConfigReturns(freebox.WifiConfig{Enabled: false}, nil)

			Expect(cmd.RunWifi(ctx, fakeClient, target, "off", out)).To(Succeed())

			Expect(fakeClient.SetWifiGlobalConfigCallCount()).To(Equal(1))
			_, cfg := fakeClient.SetWifiGlobalConfigArgsForCall(0)
			Expect(cfg.Enabled).To(BeFalse())
			Expect(out.String()).To(ContainSubstring("Freebox WiFi: off"))
		})

		It("mentions the missing permission", func() {
			fakeClient.PermissionsReturns(freebox.Permissions{}, nil)

			Expect(cmd.RunWifi(ctx, fakeClient, target, "status", out)).To(Succeed())
			Expect(out.String()).To(ContainSubstring("Missing \"settings\" permission"))
		})

		It("fails when the Freebox is unreachable", func() {
			fakeClient.OpenReturns(errors.New("connection refused"))

			err := cmd.RunWifi(ctx, fakeClient, target, "on", out)
			Expect(err).To(MatchError(ContainSubstring("failed to connect")))
			Expect(fakeClient.SetWifiGlobalConfigCallCount()).To(Equal(0))
			Expect(fakeClient.CloseCallCount()).To(Equal(0))
		})

		It("returns command errors and still closes the session", func() {
			fakeClient.SetWifiGlobalConfigReturns(errors.New("insufficient rights"))

			Expect(cmd.RunWifi(ctx, fakeClient, target, "on", out)).To(MatchError(ContainSubstring("turn on wifi")))
			Expect(fakeClient.CloseCallCount()).To(Equal(1))
		})
	})

	Describe("PrintDiscovery", func() {
		It("shows the resolved API endpoint", func() {
			cmd.PrintDiscovery(out, discovery.Event{
				Instance:   "Freebox Server",
				Host:       "192.168.1.254",
				Port:       80,
				Properties: map[string]string{"api_domain": "abcd1234.fbxos.fr", "https_port": "41234", "api_version": "10.2"},
			})
			Expect(out.String()).To(Equal("Freebox Server at 192.168.1.254:80\n  API endpoint: https://abcd1234.fbxos.fr:41234 (api_version 10.2)\n"))
		})

		It("flags announcements without an endpoint", func() {
			cmd.PrintDiscovery(out, discovery.Event{Instance: "Freebox Server", Host: "192.168.1.254", Port: 80})
			Expect(out.String()).To(ContainSubstring("unusable"))
		})
	})
})
