package oci

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const sampleConfig = `[DEFAULT]
user=ocid1.user.oc1..aaa
fingerprint=aa:bb:cc:dd
tenancy=ocid1.tenancy.oc1..bbb
region=eu-frankfurt-1
key_file=<path to your private keyfile> # TODO
`

func TestParseConfigText(t *testing.T) {
	values := ParseConfigText(strings.Split(sampleConfig, "\n"))

	assert.Equal(t, "ocid1.user.oc1..aaa", values["user"])
	assert.Equal(t, "aa:bb:cc:dd", values["fingerprint"])
	assert.Equal(t, "ocid1.tenancy.oc1..bbb", values["tenancy"])
	assert.Equal(t, "eu-frankfurt-1", values["region"])

	// section headers never become keys
	_, ok := values["[DEFAULT]"]
	assert.False(t, ok)
}

func TestParseConfigTextSkipsCommentsAndBlanks(t *testing.T) {
	values := ParseConfigText([]string{
		"# a comment",
		"",
		"   ",
		"no equals sign here",
		"region = us-ashburn-1",
	})

	assert.Len(t, values, 1)
	assert.Equal(t, "us-ashburn-1", values["region"])
}

func TestIsPlaceholderKeyPath(t *testing.T) {
	assert.True(t, IsPlaceholderKeyPath("<path to your private keyfile> # TODO"))
	assert.True(t, IsPlaceholderKeyPath("TODO"))
	assert.False(t, IsPlaceholderKeyPath("/home/user/.oci/key.pem"))
}

func TestReplaceConfigValue(t *testing.T) {
	updated := ReplaceConfigValue(sampleConfig, "key_file", "/home/user/.heatwaved/.oci/key.pem")

	assert.Contains(t, updated, "key_file=/home/user/.heatwaved/.oci/key.pem")
	assert.NotContains(t, updated, "<path to your private keyfile>")

	// everything else is untouched
	assert.Contains(t, updated, "user=ocid1.user.oc1..aaa")
	assert.Contains(t, updated, "[DEFAULT]")
}

func TestReplaceConfigValueIgnoresComments(t *testing.T) {
	raw := "# key_file=old\nkey_file=real\n"
	updated := ReplaceConfigValue(raw, "key_file", "/new/path")

	assert.Contains(t, updated, "# key_file=old")
	assert.Contains(t, updated, "key_file=/new/path")
}
