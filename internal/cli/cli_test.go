package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func availabilityServer(t *testing.T, stock map[string]string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		planCode := r.URL.Query().Get("planCode")
		status, ok := stock[planCode]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		body := []map[string]interface{}{{
			"memory":  "ram-64g-ecc-2133",
			"storage": "softraid-2x450nvme",
			"datacenters": []map[string]string{
				{"datacenter": "bhs", "availability": status},
			},
		}}
		assert.NoError(t, json.NewEncoder(w).Encode(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeConfig(t *testing.T, cfg map[string]interface{}) string {
	t.Helper()
	data, err := json.Marshal(cfg)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "ovhwatch.json")
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

func TestCheckCommand_Found(t *testing.T) {
	srv := availabilityServer(t, map[string]string{
		"24sk202-ca": "unavailable",
		"24sk202-us": "72H",
	})
	path := writeConfig(t, map[string]interface{}{
		"api_url": srv.URL + "/availabilities/",
		"regions": []string{"24sk202-ca", "24sk202-us", "24sk202-eu"},
	})

	out, err := runCmd(t, "check", "--config", path)
	require.NoError(t, err)
	assert.Equal(t, "24sk202-us\tBHS\t72H\n", out)
}

func TestCheckCommand_NotFound(t *testing.T) {
	srv := availabilityServer(t, map[string]string{"24sk202-ca": "unavailable"})
	path := writeConfig(t, map[string]interface{}{
		"api_url": srv.URL,
		"regions": []string{"24sk202-ca"},
	})

	out, err := runCmd(t, "check", "--config", path, "--log-level", "error")
	require.NoError(t, err)
	assert.Equal(t, "No stock for 64G + NVMe in 24sk202-ca\n", out)
}

func TestCheckCommand_NotifiesRelay(t *testing.T) {
	srv := availabilityServer(t, map[string]string{"24sk202-eu": "1H-high"})

	got := make(chan string, 1)
	relay := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, r.ParseForm())
		got <- r.URL.Path + "|" + r.PostForm.Get("msg")
	}))
	defer relay.Close()

	path := writeConfig(t, map[string]interface{}{
		"api_url":  srv.URL,
		"regions":  []string{"24sk202-eu"},
		"qmsg_url": relay.URL + "/send/",
		"qmsg_key": "k3y",
	})

	_, err := runCmd(t, "check", "-c", path)
	require.NoError(t, err)
	assert.Equal(t,
		fmt.Sprintf("/send/k3y|OVH restock alert\nPlan code: 24sk202-eu\nDatacenter: BHS\nConfig: 64G + NVMe\nDelivery: 1H-high\n%s", "https://eco.ovhcloud.com/"),
		<-got)
}

func TestCheckCommand_InvalidConfig(t *testing.T) {
	path := writeConfig(t, map[string]interface{}{"regions": []string{}})

	_, err := runCmd(t, "check", "--config", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestConfigCommand_MasksKey(t *testing.T) {
	t.Setenv("OVHWATCH_QMSG_KEY", "supersecretkey")

	out, err := runCmd(t, "config", "--config", filepath.Join(t.TempDir(), "none.json"))
	require.NoError(t, err)
	assert.NotContains(t, out, "supersecretkey")
	assert.Contains(t, out, `"qmsg_key": "su**********ey"`)
	assert.Contains(t, out, `"24sk202-ca"`)
}
