package confirm

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAutoAlwaysConfirms(t *testing.T) {
	assert.True(t, Auto{}.Confirm("anything"))
}

func TestKeyConfirmerEnterConfirms(t *testing.T) {
	var out bytes.Buffer
	k := &KeyConfirmer{In: strings.NewReader("\n"), Out: &out}

	assert.True(t, k.Confirm("proceed?"))
	assert.Contains(t, out.String(), "proceed?")
}

func TestKeyConfirmerOtherKeyCancels(t *testing.T) {
	var out bytes.Buffer
	k := &KeyConfirmer{In: strings.NewReader("x"), Out: &out}

	assert.False(t, k.Confirm("proceed?"))
}

func TestKeyConfirmerEOFCancels(t *testing.T) {
	var out bytes.Buffer
	k := &KeyConfirmer{In: strings.NewReader(""), Out: &out}

	assert.False(t, k.Confirm("proceed?"))
}
