package dig_container

import (
	"testing"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	echoapi "github.com/trezcool/tutordesk/apps/api/echo"
	"github.com/trezcool/tutordesk/core"
	"github.com/trezcool/tutordesk/core/lesson"
	"github.com/trezcool/tutordesk/services/scheduler"
)

func TestNew_resolvesGraph(t *testing.T) {
	c := New()

	err := c.Invoke(func(
		conf *core.Config,
		gateway lesson.Gateway,
		sessions *lesson.Sessions,
		sched *scheduler.Scheduler,
		validate *validator.Validate,
		translator ut.Translator,
		server *echoapi.Server,
	) {
		assert.NotNil(t, conf)
		assert.NotNil(t, gateway)
		assert.Equal(t, 0, sessions.Len())
		assert.NotNil(t, sched)
		assert.NotNil(t, validate)
		assert.NotNil(t, translator)
		require.NotNil(t, server)
		assert.NoError(t, server.Close())
	})
	require.NoError(t, err)
}
