package options

// ParsingOptions tune how JSON values are decoded.
type ParsingOptions struct {
	// FillMissingOptionals binds an absent field whose type accepts null to null
	// instead of leaving it to the record's default.
	FillMissingOptionals bool `json:"fill_missing_optionals" yaml:"fill_missing_optionals" mapstructure:"fill_missing_optionals"`
}

// Default returns the options decoding uses when none are given.
func Default() ParsingOptions {
	return ParsingOptions{}
}
