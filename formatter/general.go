package formatter

type GeneralResultFormatter struct{}

func (f *GeneralResultFormatter) ResultTemplate() string {
	return `{{header "ok" .Module .Demo .Elapsed}}
{{body .Lines .Padding}}
`
}

type FailedResultFormatter struct{}

func (f *FailedResultFormatter) ResultTemplate() string {
	return `{{header "error" .Module .Demo .Elapsed}}
{{failure .Message .Padding}}
`
}
