package printjob

// JobOptions describes a single print job. Every string field is treated as
// attacker-influenced free text; nothing here is assumed shell-safe.
type JobOptions struct {
	// Destination names the target printer or queue. Empty means the tool's
	// default destination.
	Destination string
	// Copies requests a positive number of copies. Zero means unset.
	Copies int
	// Title labels the job in the queue. Empty means unset.
	Title string
	// JobOptions holds backend-specific key=value settings rendered as
	// `-o key=value` tokens in sorted key order.
	JobOptions map[string]string
	// Dialect selects between the lp and lpr flag spellings.
	Dialect ToolDialect
}

// OptionsBuilder assembles JobOptions fluently.
type OptionsBuilder struct {
	options JobOptions
}

// NewOptionsBuilder starts building job options with the lp dialect.
func NewOptionsBuilder() *OptionsBuilder {
	return &OptionsBuilder{options: JobOptions{Dialect: DialectLP}}
}

// Destination sets the destination printer name.
func (builder *OptionsBuilder) Destination(destination string) *OptionsBuilder {
	builder.options.Destination = destination
	return builder
}

// DestinationIf sets the destination only when present.
func (builder *OptionsBuilder) DestinationIf(destination *string) *OptionsBuilder {
	if destination != nil {
		builder.options.Destination = *destination
	}
	return builder
}

// ClearDestination removes any previously set destination.
func (builder *OptionsBuilder) ClearDestination() *OptionsBuilder {
	builder.options.Destination = ""
	return builder
}

// Copies sets the number of copies to print.
func (builder *OptionsBuilder) Copies(copies int) *OptionsBuilder {
	builder.options.Copies = copies
	return builder
}

// ClearCopies removes any previously set copies value.
func (builder *OptionsBuilder) ClearCopies() *OptionsBuilder {
	builder.options.Copies = 0
	return builder
}

// Title sets the job title.
func (builder *OptionsBuilder) Title(title string) *OptionsBuilder {
	builder.options.Title = title
	return builder
}

// ClearTitle removes any previously set job title.
func (builder *OptionsBuilder) ClearTitle() *OptionsBuilder {
	builder.options.Title = ""
	return builder
}

// JobOption inserts or replaces a single key=value job option.
func (builder *OptionsBuilder) JobOption(key string, value string) *OptionsBuilder {
	if builder.options.JobOptions == nil {
		builder.options.JobOptions = map[string]string{}
	}
	builder.options.JobOptions[key] = value
	return builder
}

// JobOptions replaces the entire job option map.
func (builder *OptionsBuilder) JobOptions(jobOptions map[string]string) *OptionsBuilder {
	duplicatedOptions := make(map[string]string, len(jobOptions))
	for optionKey, optionValue := range jobOptions {
		duplicatedOptions[optionKey] = optionValue
	}
	builder.options.JobOptions = duplicatedOptions
	return builder
}

// Dialect selects the submission tool dialect.
func (builder *OptionsBuilder) Dialect(dialect ToolDialect) *OptionsBuilder {
	builder.options.Dialect = dialect
	return builder
}

// Build returns the assembled JobOptions.
func (builder *OptionsBuilder) Build() JobOptions {
	return builder.options
}
