package model

// Option is a code/label pair for form selects.
type Option struct {
	Code  string
	Label string
}

var categoryOrder = []Option{
	{"ESTETOSCOPIO", "Estetoscópio"},
	{"MONITOR_PRESSAO", "Monitor de pressão arterial"},
	{"OXIMETRO_PULSO", "Oxímetro de pulso"},
	{"MICROSCOPIO", "Microscópio"},
	{"MANEQUINS_SIMULACAO", "Manequim de simulação"},
	{"INSTRUMENTOS_CIRURGICOS", "Instrumentos cirúrgicos"},
	{"DESFIBRILADOR", "Desfibrilador"},
	{"BOMBA_INFUSAO", "Bomba de infusão"},
	{"RESPIRADOR", "Respirador"},
}

var conditionOrder = []Option{
	{"NEW", "Equipamento novo"},
	{"USED", "Equipamento usado"},
	{"PARTIALLY_FUNCTIONAL", "Equipamento parcialmente funcional"},
}

var (
	categoryLabels  = index(categoryOrder)
	conditionLabels = index(conditionOrder)
)

func index(opts []Option) map[string]string {
	m := make(map[string]string, len(opts))
	for _, o := range opts {
		m[o.Code] = o.Label
	}
	return m
}

// CategoryLabel returns the display label for a category code, or the code itself when unknown.
func CategoryLabel(code string) string {
	if label, ok := categoryLabels[code]; ok {
		return label
	}
	return code
}

// ConditionLabel returns the display label for a condition code, or the code itself when unknown.
func ConditionLabel(code string) string {
	if label, ok := conditionLabels[code]; ok {
		return label
	}
	return code
}

// Categories lists category options in display order.
func Categories() []Option {
	return append([]Option(nil), categoryOrder...)
}

// Conditions lists condition options in display order.
func Conditions() []Option {
	return append([]Option(nil), conditionOrder...)
}

// IsCategory reports whether code is a known category.
func IsCategory(code string) bool {
	_, ok := categoryLabels[code]
	return ok
}

// IsCondition reports whether code is a known condition.
func IsCondition(code string) bool {
	_, ok := conditionLabels[code]
	return ok
}
