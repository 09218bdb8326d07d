package public

import (
	"io/fs"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticFS(t *testing.T) {
	fsys, err := StaticFS()
	require.NoError(t, err)

	for _, name := range []string{"styles.css", "js/navigation.js", "images/favicon.svg"} {
		_, err := fs.Stat(fsys, name)
		assert.NoError(t, err, name)
	}
}

func TestNavigationScriptRemountsAfterPageRestore(t *testing.T) {
	fsys, err := StaticFS()
	require.NoError(t, err)
	b, err := fs.ReadFile(fsys, "js/navigation.js")
	require.NoError(t, err)
	src := string(b)

	// teardown on pagehide is paired with a mount when a cached page is shown again
	assert.Regexp(t, regexp.MustCompile(`addEventListener\("pagehide", unmount\)`), src)
	assert.Regexp(t, regexp.MustCompile(`addEventListener\("pageshow", \(event\) => \{\s*if \(event\.persisted\) mount\(\);`), src)
	assert.NotRegexp(t, regexp.MustCompile(`"pagehide"[^\n]*once: true`), src)

	// mount registers the scroll listener against a fresh controller and is idempotent
	assert.Regexp(t, regexp.MustCompile(`function mount\(\) \{\s*if \(controller\) return;`), src)
	assert.Contains(t, src, `{ passive: true, signal: controller.signal }`)
}
