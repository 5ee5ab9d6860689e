package langdetect_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/prosedown/prose/langdetect"
)

func TestDetect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"empty", "", "text"},
		{"bash shebang", "#!/bin/bash\necho hi\n", "bash"},
		{"sh shebang", "#!/bin/sh\nls\n", "bash"},
		{"python shebang", "#!/usr/bin/env python\nprint(1)\n", "python"},
	}
	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, test.want, langdetect.Detect([]byte(test.content)))
		})
	}
}

func TestDetectLowConfidence(t *testing.T) {
	t.Parallel()

	// Nothing to go on: the fallback must be stable, not a guess.
	got := langdetect.Detect([]byte("zzzz"))
	assert.NotEmpty(t, got)
}
