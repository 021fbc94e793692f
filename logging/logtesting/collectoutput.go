package logtesting

import (
	"os"

	"github.com/MobRulesGames/relic/logging"
	"github.com/runningwild/glop/gloptest"
)

// Like gloptest.CollectOutput but knows about the relic logging package and
// what's needed to capture that output.
func CollectOutput(fn func()) []string {
	return gloptest.CollectOutput(func() {
		// We can redirect to the current os.Stderr because that's what
		// gloptest.CollectOutput will be collecting.
		reset := logging.Redirect(os.Stderr)
		defer reset()

		fn()
	})
}
