package plot

import (
	"bytes"
	"context"
	"log/slog"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Logger", func() {
	AfterEach(func() {
		SetLogger(nil)
	})

	It("is silent by default", func() {
		Expect(Logger().Enabled(context.Background(), slog.LevelWarn)).To(BeFalse())
	})

	It("reports unknown driver fallbacks once configured", func() {
		var buf bytes.Buffer
		SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))

		reg := registryWith("rec", &recorder{})
		_, err := reg.Resolve("x11")
		Expect(err).NotTo(HaveOccurred())
		Expect(buf.String()).To(ContainSubstring("requested=x11"))
		Expect(buf.String()).To(ContainSubstring("driver=rec"))
	})
})
