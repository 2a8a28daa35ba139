package calc

import "github.com/goliatone/go-calculator/pkg/activity"

// WithActivityHooks attaches activity hooks notified by sessions on every
// dispatched action. Nil hooks are dropped.
func WithActivityHooks(hooks activity.Hooks) Option {
	normalized := cloneActivityHooks(hooks)
	return func(cfg *config) {
		cfg.activityHooks = normalized
	}
}

// WithActivityConfig overrides the emitter configuration. Without it,
// emission is enabled whenever hooks are configured.
func WithActivityConfig(activityCfg activity.Config) Option {
	return func(cfg *config) {
		cfg.activityConfig = activityCfg
		cfg.activitySet = true
	}
}

// ActivityHooks returns a copy of the configured hooks.
func (c *Calculator) ActivityHooks() activity.Hooks {
	if c == nil {
		return nil
	}
	return cloneActivityHooks(c.cfg.activityHooks)
}

func (c *Calculator) newEmitter() *activity.Emitter {
	activityCfg := c.cfg.activityConfig
	if !c.cfg.activitySet {
		activityCfg.Enabled = true
	}
	return activity.NewEmitter(c.cfg.activityHooks, activityCfg)
}

func cloneActivityHooks(hooks activity.Hooks) activity.Hooks {
	if len(hooks) == 0 {
		return nil
	}
	normalized := make([]activity.ActivityHook, 0, len(hooks))
	for _, hook := range hooks {
		if hook == nil {
			continue
		}
		normalized = append(normalized, hook)
	}
	if len(normalized) == 0 {
		return nil
	}
	return activity.Hooks(normalized)
}
