package integration_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"freebox-gate/internal/config"
	"freebox-gate/internal/discovery"
	"freebox-gate/internal/freebox"
	"freebox-gate/internal/freebox/freeboxfakes"
	"freebox-gate/internal/hub"
	"freebox-gate/internal/integration"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestIntegration(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Integration Suite")
}

// platformRecorder captures platform loads by domain.
type platformRecorder struct {
	mu    sync.Mutex
	loads map[string][]hub.DiscoveryInfo
}

func (r *platformRecorder) register(h *hub.Hub, domains ...string) {
	for _, domain := range domains {
		domain := domain
		h.RegisterPlatform(domain, func(ctx context.Context, h *hub.Hub, info hub.DiscoveryInfo) error {
			r.mu.Lock()
			defer r.mu.Unlock()
			r.loads[domain] = append(r.loads[domain], info)
			return nil
		})
	}
}

func (r *platformRecorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, l := range r.loads {
		n += len(l)
	}
	return n
}

func freeboxEvent(host, port string) discovery.Event {
	return discovery.Event{
		Service:    discovery.ServiceFreebox,
		Instance:   "Freebox Server",
		Properties: map[string]string{"api_domain": host, "https_port": port},
	}
}

var _ = Describe("Integration", func() {
	var (
		h          *hub.Hub
		logs       *observer.ObservedLogs
		fakeClient *freeboxfakes.FakeClient
		recorder   *platformRecorder
		opts       integration.Options
		clientOpts []freebox.Options
		ctx        context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		var core zapcore.Core
		core, logs = observer.New(zap.DebugLevel)
		h = hub.New(zap.New(core))

		recorder = &platformRecorder{loads: map[string][]hub.DiscoveryInfo{}}
		recorder.register(h, integration.PlatformSensor, integration.PlatformDeviceTracker, integration.PlatformSwitch)

		fakeClient = &freeboxfakes.FakeClient{}
		fakeClient.PermissionsReturns(freebox.Permissions{freebox.PermissionSettings: true}, nil)
		clientOpts = nil
		opts = integration.Options{
			TokenFile: "/tmp/config/freebox.conf",
			Version:   "1.2.3",
			NewClient: func(o freebox.Options) (freebox.Client, error) {
				clientOpts = append(clientOpts, o)
				return fakeClient, nil
			},
		}
	})

	Context("with static configuration", func() {
		BeforeEach(func() {
			opts.Static = &config.Freebox{Host: "mafreebox.freebox.fr", Port: 443}
		})

		It("connects exactly once and ignores discovery", func() {
			i := integration.Setup(ctx, h, opts)

			h.Discover(ctx, freeboxEvent("other.fbxos.fr", "4242"))
			Expect(h.Wait()).To(Succeed())

			Expect(fakeClient.OpenCallCount()).To(Equal(1))
			_, host, port := fakeClient.OpenArgsForCall(0)
			Expect(host).To(Equal("mafreebox.freebox.fr"))
			Expect(port).To(Equal(443))
			Expect(i.Ready()).To(BeTrue())
			Expect(i.Source()).To(Equal(integration.Static{Host: "mafreebox.freebox.fr", Port: 443}))
			Expect(recorder.loads[integration.PlatformSwitch]).To(HaveLen(1))
		})

		It("builds the client with the app identity and token file", func() {
			integration.Setup(ctx, h, opts)

			Expect(clientOpts).To(HaveLen(1))
			Expect(clientOpts[0].TokenFile).To(Equal("/tmp/config/freebox.conf"))
			Expect(clientOpts[0].AppDesc.AppID).To(Equal(integration.AppID))
			Expect(clientOpts[0].AppDesc.AppName).To(Equal(integration.AppName))
			Expect(clientOpts[0].AppDesc.AppVersion).To(Equal("1.2.3"))
			Expect(clientOpts[0].AppDesc.DeviceName).NotTo(BeEmpty())
		})

		It("stores the session and loads every platform", func() {
			integration.Setup(ctx, h, opts)
			Expect(h.Wait()).To(Succeed())

			session, ok := h.Data.Get(freebox.Domain)
			Expect(ok).To(BeTrue())
			Expect(session).To(BeIdenticalTo(fakeClient))
			Expect(recorder.loads[integration.PlatformSensor]).To(Equal([]hub.DiscoveryInfo{{}}))
			Expect(recorder.loads[integration.PlatformDeviceTracker]).To(Equal([]hub.DiscoveryInfo{{}}))
			Expect(recorder.loads[integration.PlatformSwitch]).To(Equal([]hub.DiscoveryInfo{{"perms_settings": true}}))
			Expect(logs.FilterLevelExact(zap.WarnLevel).Len()).To(Equal(0))
		})

		It("loads the switch as unavailable and warns without the settings permission", func() {
			fakeClient.PermissionsReturns(freebox.Permissions{"explorer": true}, nil)

			integration.Setup(ctx, h, opts)
			Expect(h.Wait()).To(Succeed())

			Expect(recorder.loads[integration.PlatformSwitch]).To(Equal([]hub.DiscoveryInfo{{"perms_settings": false}}))
			warnings := logs.FilterLevelExact(zap.WarnLevel).FilterMessageSnippet("settings").All()
			Expect(warnings).To(HaveLen(1))
		})

		It("treats an unreadable permission set as missing", func() {
			fakeClient.PermissionsReturns(nil, errors.New("timeout"))

			integration.Setup(ctx, h, opts)
			Expect(h.Wait()).To(Succeed())

			Expect(recorder.loads[integration.PlatformSwitch]).To(Equal([]hub.DiscoveryInfo{{"perms_settings": false}}))
			Expect(logs.FilterLevelExact(zap.WarnLevel).Len()).To(Equal(2))
		})

		It("logs connection failures and stays not ready", func() {
			fakeClient.OpenReturns(errors.New("connection refused"))

			i := integration.Setup(ctx, h, opts)
			Expect(h.Wait()).To(Succeed())

			Expect(i.Ready()).To(BeFalse())
			_, ok := h.Data.Get(freebox.Domain)
			Expect(ok).To(BeFalse())
			Expect(recorder.count()).To(Equal(0))
			Expect(fakeClient.PermissionsCallCount()).To(Equal(0))
			Expect(logs.FilterLevelExact(zap.ErrorLevel).FilterMessage("Failed to connect to Freebox").Len()).To(Equal(1))
		})

		It("closes the session once when the hub stops", func() {
			integration.Setup(ctx, h, opts)

			Expect(h.Stop(ctx)).To(Succeed())
			Expect(h.Stop(ctx)).To(Succeed())

			Expect(fakeClient.CloseCallCount()).To(Equal(1))
			_, ok := h.Data.Get(freebox.Domain)
			Expect(ok).To(BeFalse())
		})
	})

	Context("without static configuration", func() {
		It("does not connect until a Freebox is discovered", func() {
			i := integration.Setup(ctx, h, opts)

			Expect(fakeClient.OpenCallCount()).To(Equal(0))
			Expect(i.Ready()).To(BeFalse())
			Expect(i.Source()).To(BeNil())
		})

		It("connects once using the discovered host and port", func() {
			i := integration.Setup(ctx, h, opts)

			h.Discover(ctx, freeboxEvent("abcd1234.fbxos.fr", "41234"))
			Expect(h.Wait()).To(Succeed())

			Expect(fakeClient.OpenCallCount()).To(Equal(1))
			_, host, port := fakeClient.OpenArgsForCall(0)
			Expect(host).To(Equal("abcd1234.fbxos.fr"))
			Expect(port).To(Equal(41234))
			Expect(i.Ready()).To(BeTrue())
			Expect(recorder.count()).To(Equal(3))
		})

		It("ignores further announcements once connected", func() {
			integration.Setup(ctx, h, opts)

			h.Discover(ctx, freeboxEvent("abcd1234.fbxos.fr", "41234"))
			h.Discover(ctx, freeboxEvent("abcd1234.fbxos.fr", "41234"))
			Expect(h.Wait()).To(Succeed())

			Expect(fakeClient.OpenCallCount()).To(Equal(1))
			Expect(recorder.count()).To(Equal(3))
		})

		It("retries on the next announcement after a failure", func() {
			fakeClient.OpenReturnsOnCall(0, errors.New("handshake failed"))
			i := integration.Setup(ctx, h, opts)

			h.Discover(ctx, freeboxEvent("abcd1234.fbxos.fr", "41234"))
			Expect(i.Ready()).To(BeFalse())
			h.Discover(ctx, freeboxEvent("abcd1234.fbxos.fr", "41234"))
			Expect(h.Wait()).To(Succeed())

			Expect(fakeClient.OpenCallCount()).To(Equal(2))
			Expect(i.Ready()).To(BeTrue())
		})

		It("ignores announcements without a usable endpoint", func() {
			integration.Setup(ctx, h, opts)

			h.Discover(ctx, freeboxEvent("", "41234"))
			h.Discover(ctx, freeboxEvent("abcd1234.fbxos.fr", "not-a-port"))

			Expect(fakeClient.OpenCallCount()).To(Equal(0))
			Expect(logs.FilterLevelExact(zap.ErrorLevel).Len()).To(Equal(2))
		})
	})
})

var _ = Describe("FromDiscovery", func() {
	It("reads api_domain and https_port", func() {
		src, err := integration.FromDiscovery(freeboxEvent("abcd1234.fbxos.fr", "41234"))
		Expect(err).NotTo(HaveOccurred())
		Expect(src).To(Equal(integration.Discovered{Host: "abcd1234.fbxos.fr", Port: 41234, Instance: "Freebox Server"}))
		Expect(src.String()).To(Equal("discovered abcd1234.fbxos.fr:41234"))
	})

	It("rejects out of range ports", func() {
		_, err := integration.FromDiscovery(freeboxEvent("abcd1234.fbxos.fr", "0"))
		Expect(err).To(HaveOccurred())
	})
})
