package rules

import (
	"log/slog"
	"sync"

	"github.com/erraggy/jsonschema2pojo/codemodel"
	"github.com/erraggy/jsonschema2pojo/config"
	"github.com/erraggy/jsonschema2pojo/schema"
)

// Factory owns the generation configuration and hands out the rules.
// Each rule is created on first use and shared afterwards. A Factory holds
// no session state, so one Factory may serve several sessions at once.
type Factory struct {
	config config.GenerationConfig

	schemaRule      func() TypeResolver
	typeRule        func() TypeResolver
	objectRule      func() TypeResolver
	arrayRule       func() TypeResolver
	enumRule        func() TypeResolver
	formatRule      func() Rule[*codemodel.Type, *codemodel.Type]
	propertiesRule  func() Rule[*codemodel.Class, *codemodel.Class]
	propertyRule    func() Rule[*codemodel.Class, *codemodel.Class]
	titleRule       func() Decorator
	descriptionRule func() Decorator
	optionalRule    func() Decorator
	requiredRule    func() Decorator
	defaultRule     func() Rule[*codemodel.Field, *codemodel.Field]
}

// FactoryOption configures a Factory.
type FactoryOption func(*Factory)

// WithTypeResolver replaces the rule used to resolve property types.
func WithTypeResolver(r TypeResolver) FactoryOption {
	return func(f *Factory) {
		f.schemaRule = func() TypeResolver { return r }
	}
}

// NewFactory returns a Factory for cfg.
func NewFactory(cfg config.GenerationConfig, opts ...FactoryOption) *Factory {
	f := &Factory{config: cfg}
	f.schemaRule = sync.OnceValue(func() TypeResolver { return &SchemaRule{factory: f} })
	f.typeRule = sync.OnceValue(func() TypeResolver { return &TypeRule{factory: f} })
	f.objectRule = sync.OnceValue(func() TypeResolver { return &ObjectRule{factory: f} })
	f.arrayRule = sync.OnceValue(func() TypeResolver { return &ArrayRule{factory: f} })
	f.enumRule = sync.OnceValue(func() TypeResolver { return &EnumRule{factory: f} })
	f.formatRule = sync.OnceValue(func() Rule[*codemodel.Type, *codemodel.Type] { return &FormatRule{factory: f} })
	f.propertiesRule = sync.OnceValue(func() Rule[*codemodel.Class, *codemodel.Class] { return &PropertiesRule{factory: f} })
	f.propertyRule = sync.OnceValue(func() Rule[*codemodel.Class, *codemodel.Class] { return &PropertyRule{factory: f} })
	f.titleRule = sync.OnceValue(func() Decorator { return &TitleRule{} })
	f.descriptionRule = sync.OnceValue(func() Decorator { return &DescriptionRule{} })
	f.optionalRule = sync.OnceValue(func() Decorator { return &OptionalRule{} })
	f.requiredRule = sync.OnceValue(func() Decorator { return &RequiredRule{factory: f} })
	f.defaultRule = sync.OnceValue(func() Rule[*codemodel.Field, *codemodel.Field] { return &DefaultRule{factory: f} })
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Config returns the generation configuration.
func (f *Factory) Config() config.GenerationConfig {
	return f.config
}

// NewContext starts a generation session. A nil logger discards output.
func (f *Factory) NewContext(store *schema.Store, model *codemodel.Model, logger *slog.Logger) *Context {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Context{
		Config:   f.config,
		Store:    store,
		Model:    model,
		Logger:   logger,
		factory:  f,
		bindings: make(map[string]*codemodel.Type),
	}
}

// SchemaRule returns the type resolver used for every schema position.
func (f *Factory) SchemaRule() TypeResolver { return f.schemaRule() }

// TypeRule returns the rule that maps the "type" keyword.
func (f *Factory) TypeRule() TypeResolver { return f.typeRule() }

// ObjectRule returns the rule that turns an object schema into a class.
func (f *Factory) ObjectRule() TypeResolver { return f.objectRule() }

// ArrayRule returns the rule that maps array schemas to collections.
func (f *Factory) ArrayRule() TypeResolver { return f.arrayRule() }

// EnumRule returns the rule that turns an "enum" schema into an enum class.
func (f *Factory) EnumRule() TypeResolver { return f.enumRule() }

// FormatRule returns the rule that refines a type by its "format".
func (f *Factory) FormatRule() Rule[*codemodel.Type, *codemodel.Type] { return f.formatRule() }

// PropertiesRule returns the rule that materializes every property of an object.
func (f *Factory) PropertiesRule() Rule[*codemodel.Class, *codemodel.Class] {
	return f.propertiesRule()
}

// PropertyRule returns the rule that materializes one property.
func (f *Factory) PropertyRule() Rule[*codemodel.Class, *codemodel.Class] { return f.propertyRule() }

// TitleRule returns the "title" decorator.
func (f *Factory) TitleRule() Decorator { return f.titleRule() }

// DescriptionRule returns the "description" decorator.
func (f *Factory) DescriptionRule() Decorator { return f.descriptionRule() }

// OptionalRule returns the "optional" decorator.
func (f *Factory) OptionalRule() Decorator { return f.optionalRule() }

// RequiredRule returns the "required" decorator.
func (f *Factory) RequiredRule() Decorator { return f.requiredRule() }

// DefaultRule returns the rule that turns "default" into a field initializer.
func (f *Factory) DefaultRule() Rule[*codemodel.Field, *codemodel.Field] { return f.defaultRule() }
