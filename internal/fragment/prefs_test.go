package fragment

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"fragit/internal/testutil"
)

func boolPtr(v bool) *bool { return &v }

func TestResolveToggle(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		flag      *bool
		persisted string
		def       bool
		expected  bool
	}{
		"default false when nothing set": {
			expected: false,
		},
		"default true when nothing set": {
			def:      true,
			expected: true,
		},
		"persisted preference enables": {
			persisted: "true",
			expected:  true,
		},
		"persisted preference disables over default": {
			persisted: "false",
			def:       true,
			expected:  false,
		},
		"git-style yes counts as true": {
			persisted: "yes",
			expected:  true,
		},
		"git-style off counts as false": {
			persisted: "off",
			def:       true,
			expected:  false,
		},
		"unparseable preference falls back to default": {
			persisted: "maybe",
			def:       true,
			expected:  true,
		},
		"explicit flag beats persisted preference": {
			flag:      boolPtr(false),
			persisted: "true",
			expected:  false,
		},
		"explicit enable beats persisted disable": {
			flag:      boolPtr(true),
			persisted: "false",
			expected:  true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			fake := testutil.NewFakeGit()
			if tt.persisted != "" {
				fake.SetConfig(PrefEdit, tt.persisted)
			}

			assert.Equal(t, tt.expected, ResolveToggle(tt.flag, fake, PrefEdit, tt.def))
		})
	}
}

func TestResolveToggleRereadsPreference(t *testing.T) {
	t.Parallel()

	fake := testutil.NewFakeGit()
	fake.SetConfig(PrefAdd, "true")
	assert.True(t, ResolveToggle(nil, fake, PrefAdd, false))

	// Changing the persisted preference takes effect immediately.
	fake.SetConfig(PrefAdd, "false")
	assert.False(t, ResolveToggle(nil, fake, PrefAdd, false))
}
