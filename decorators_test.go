package numfmt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapFactoryWithHooksPassthrough(t *testing.T) {
	base := NewXTextFactory(nil)

	assert.Same(t, base, WrapFactoryWithHooks(base))
	assert.Same(t, base, WrapFactoryWithHooks(base, nil, nil))
	assert.Nil(t, WrapFactoryWithHooks(nil, ConstructionHookFuncs{}))
}

func TestHookedFactoryRunsHooksInOrder(t *testing.T) {
	var order []string
	hook := func(name string) ConstructionHook {
		return ConstructionHookFuncs{
			Before: func(ctx *ConstructionHookContext) {
				order = append(order, "before:"+name)
				ctx.SetMetadata("seen", name)
			},
			After: func(ctx *ConstructionHookContext) {
				order = append(order, "after:"+name)
			},
		}
	}

	factory := WrapFactoryWithHooks(NewXTextFactory(nil), hook("a"), nil, hook("b"))
	formatter, err := factory.New("en-US", FormatterOptions{})
	require.NoError(t, err)
	assert.Equal(t, "1,000", formatter.Format(1000))
	assert.Equal(t, []string{"before:a", "before:b", "after:a", "after:b"}, order)
}

func TestHookedFactoryCanRewrite(t *testing.T) {
	forceLocale := ConstructionHookFuncs{
		Before: func(ctx *ConstructionHookContext) {
			ctx.Locale = "de-DE"
		},
	}
	var failed *ConstructionHookContext
	recordFailure := ConstructionHookFuncs{
		After: func(ctx *ConstructionHookContext) {
			if ctx.Error != nil {
				failed = ctx
			}
		},
	}

	session := newTestSession(t, WithConstructionHooks(forceLocale, recordFailure))

	got, err := session.FormatNumber(1234.5)
	require.NoError(t, err)
	assert.Equal(t, "1.234,5", got)

	_, err = session.FormatNumber(1, WithMinFractionDigits(3), WithMaxFractionDigits(1))
	require.ErrorIs(t, err, ErrFormatConstruction)
	require.NotNil(t, failed)
	assert.Equal(t, "de-DE", failed.Locale)
}

func TestHookedFactoryCanReplaceError(t *testing.T) {
	fallback := ConstructionHookFuncs{
		After: func(ctx *ConstructionHookContext) {
			if ctx.Error != nil {
				ctx.Formatter, ctx.Error = stubFormatter("?"), nil
			}
		},
	}

	factory := WrapFactoryWithHooks(NewXTextFactory(nil), fallback)
	formatter, err := factory.New("!!", FormatterOptions{})
	require.NoError(t, err)
	assert.Equal(t, "?", formatter.Format(1))
}

func TestConstructionHookContextMetadata(t *testing.T) {
	var nilCtx *ConstructionHookContext
	nilCtx.SetMetadata("k", 1)
	_, ok := nilCtx.MetadataValue("k")
	assert.False(t, ok)

	ctx := &ConstructionHookContext{}
	ctx.SetMetadata("", 1)
	assert.Nil(t, ctx.Metadata)

	ctx.SetMetadata("k", 2)
	v, ok := ctx.MetadataValue("k")
	assert.True(t, ok)
	assert.Equal(t, 2, v)
}
