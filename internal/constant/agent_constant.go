package constant

// Agent categories supported by the platform. Each category has its own
// question catalog, template label filter and prompt template.
const (
	AgentBrand   = "brand"
	AgentDigital = "digital"
)

// Template Store entry labels
const (
	LabelBrandTemplate   = "brand_template"
	LabelDigitalTemplate = "digital_template"
	LabelDigitalExample  = "digital_example"
)

// Fixed Template Store entry ids (also used as labels, one entry per label)
const (
	TemplateIdBrand          = "brand_template"
	TemplateIdDigital        = "digital_template"
	TemplateIdDigitalExample = "digital_example"
)

// Reference documents loaded into the Template Store on first use
const (
	ReferenceFileBrand          = "Brand Guideline.docx"
	ReferenceFileDigital        = "Digital Strategy.docx"
	ReferenceFileDigitalExample = "Digital Strategy Example.docx"
)

// Retrieval and generation parameters
const (
	RetrievalTopK = 3

	GenerationTemperature = 0.3

	// Brand documents carry a longer required structure, so they get a
	// larger output budget.
	MaxTokensBrand   = 6000
	MaxTokensDigital = 4000
)
