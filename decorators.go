package numfmt

// ConstructionHook observes formatter construction on cache misses. Before
// hooks may rewrite the locale or options; after hooks may replace the
// formatter or the error.
type ConstructionHook interface {
	BeforeConstruct(ctx *ConstructionHookContext)
	AfterConstruct(ctx *ConstructionHookContext)
}

type ConstructionHookContext struct {
	Locale    string
	Options   FormatterOptions
	Formatter NumberFormatter
	Error     error
	Metadata  map[string]any
}

func (ctx *ConstructionHookContext) SetMetadata(key string, value any) {
	if ctx == nil || key == "" {
		return
	}
	if ctx.Metadata == nil {
		ctx.Metadata = make(map[string]any)
	}
	ctx.Metadata[key] = value
}

func (ctx *ConstructionHookContext) MetadataValue(key string) (any, bool) {
	if ctx == nil || ctx.Metadata == nil {
		return nil, false
	}
	val, ok := ctx.Metadata[key]
	return val, ok
}

type ConstructionHookFuncs struct {
	Before func(ctx *ConstructionHookContext)
	After  func(ctx *ConstructionHookContext)
}

func (h ConstructionHookFuncs) BeforeConstruct(ctx *ConstructionHookContext) {
	if h.Before != nil {
		h.Before(ctx)
	}
}

func (h ConstructionHookFuncs) AfterConstruct(ctx *ConstructionHookContext) {
	if h.After != nil {
		h.After(ctx)
	}
}

var _ FormatterFactory = &HookedFactory{}

type HookedFactory struct {
	next  FormatterFactory
	hooks []ConstructionHook
}

// WrapFactoryWithHooks returns next unchanged when there is nothing to run.
func WrapFactoryWithHooks(next FormatterFactory, hooks ...ConstructionHook) FormatterFactory {
	if next == nil || len(hooks) == 0 {
		return next
	}

	filtered := make([]ConstructionHook, 0, len(hooks))
	for _, hook := range hooks {
		if hook == nil {
			continue
		}
		filtered = append(filtered, hook)
	}

	if len(filtered) == 0 {
		return next
	}

	return &HookedFactory{next: next, hooks: filtered}
}

func (f *HookedFactory) New(locale string, opts FormatterOptions) (NumberFormatter, error) {
	if f == nil || f.next == nil {
		return nil, errNilFormatter
	}

	ctx := &ConstructionHookContext{
		Locale:  locale,
		Options: opts,
	}

	for _, hook := range f.hooks {
		hook.BeforeConstruct(ctx)
	}

	ctx.Formatter, ctx.Error = f.next.New(ctx.Locale, ctx.Options)

	for _, hook := range f.hooks {
		hook.AfterConstruct(ctx)
	}

	return ctx.Formatter, ctx.Error
}
