package notifier

import (
	"errors"
	"testing"

	"ovhwatch/config"
	"ovhwatch/internal/matcher"
	"ovhwatch/internal/notifier/platform"
	"ovhwatch/internal/notifier/qmsg"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingNotifier struct {
	calls []string
	err   error
}

func (r *recordingNotifier) Notify(title, message, url string) error {
	r.calls = append(r.calls, title+"|"+message+"|"+url)
	return r.err
}

var sampleHit = matcher.Hit{
	PlanCode:     "24sk202-ca",
	Datacenter:   "bhs",
	Availability: "1H-high",
	Memory:       "ram-64g-ecc-2133",
	Storage:      "softraid-2x450nvme",
}

func TestFormatHitMessage(t *testing.T) {
	t.Parallel()

	msg := FormatHitMessage(sampleHit, "64G + NVMe")
	assert.Equal(t, "Plan code: 24sk202-ca\nDatacenter: BHS\nConfig: 64G + NVMe\nDelivery: 1H-high", msg)
}

func TestStockNotifier_NotifyHit(t *testing.T) {
	t.Parallel()

	rec := &recordingNotifier{}
	sn := NewStockNotifier(rec, "64G + NVMe", "https://eco.ovhcloud.com/")
	require.NoError(t, sn.NotifyHit(sampleHit))

	require.Len(t, rec.calls, 1)
	assert.Equal(t,
		"OVH restock alert|Plan code: 24sk202-ca\nDatacenter: BHS\nConfig: 64G + NVMe\nDelivery: 1H-high|https://eco.ovhcloud.com/",
		rec.calls[0])
}

func TestMulti_ContinuesAfterFailure(t *testing.T) {
	t.Parallel()

	failing := &recordingNotifier{err: errors.New("relay down")}
	ok := &recordingNotifier{}
	m := Multi{failing, ok}

	err := m.Notify("t", "m", "u")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "relay down")
	assert.Len(t, failing.calls, 1)
	assert.Len(t, ok.calls, 1)
}

func TestMulti_Empty(t *testing.T) {
	t.Parallel()

	assert.NoError(t, Multi{}.Notify("t", "m", "u"))
}

func TestNew(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		key     string
		desktop bool
		want    int
	}{
		"nothing configured": {},
		"qmsg only":          {key: "k", want: 1},
		"desktop only":       {desktop: true, want: 1},
		"both":               {key: "k", desktop: true, want: 2},
	}

	for name, tc := range tests {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			cfg := &config.Configuration{
				QmsgURL:       config.DefaultQmsgURL,
				QmsgKey:       tc.key,
				DesktopNotify: tc.desktop,
				NotifyTimeout: config.NotifyTimeout,
			}
			m, ok := New(cfg).(Multi)
			require.True(t, ok)
			assert.Len(t, m, tc.want)
			if tc.key != "" {
				assert.IsType(t, &qmsg.Client{}, m[0])
			}
			if tc.desktop {
				assert.IsType(t, &platform.DesktopNotifier{}, m[len(m)-1])
			}
		})
	}
}
