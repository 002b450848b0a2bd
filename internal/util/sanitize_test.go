package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripHTML(t *testing.T) {
	assert.Equal(t, "Tanggung jawab: Desain & UI", StripHTML("<p>Tanggung jawab:</p><ul><li>Desain &amp; UI</li></ul>"))
	assert.Equal(t, "plain text", StripHTML("plain   text"))
	assert.Equal(t, "", StripHTML(""))
	assert.Equal(t, "", StripHTML("<br/><div></div>"))
}
