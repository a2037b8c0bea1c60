package model

import "strings"

// Category is one of the fixed product categories.
type Category string

const (
	CategoryPrecisionHighResistance Category = "PRECISION_HIGH_RESISTANCE"
	CategoryMagneticSoft            Category = "MAGNETIC_SOFT"
	CategoryMagneticHighInduction   Category = "MAGNETIC_HIGH_INDUCTION"
	CategoryTemperatureCoefficient  Category = "TEMPERATURE_COEFFICIENT"
	CategoryIronNickel              Category = "IRON_NICKEL"
	CategoryNickelBase              Category = "NICKEL_BASE"
	CategoryElasticElements         Category = "ELASTIC_ELEMENTS"
	CategoryCorrosionResistant      Category = "CORROSION_RESISTANT"
	CategoryHeatResistant           Category = "HEAT_RESISTANT"
	CategoryNichromeWire            Category = "NICHROME_WIRE"
)

var categories = []Category{
	CategoryPrecisionHighResistance,
	CategoryMagneticSoft,
	CategoryMagneticHighInduction,
	CategoryTemperatureCoefficient,
	CategoryIronNickel,
	CategoryNickelBase,
	CategoryElasticElements,
	CategoryCorrosionResistant,
	CategoryHeatResistant,
	CategoryNichromeWire,
}

var categoryNames = map[Category]string{
	CategoryPrecisionHighResistance: "Прецизионные сплавы с высоким сопротивлением",
	CategoryMagneticSoft:            "Магнитно-мягкие сплавы",
	CategoryMagneticHighInduction:   "Магнитно-мягкие с высокой индукцией",
	CategoryTemperatureCoefficient:  "Сплавы с заданным ТКЛР",
	CategoryIronNickel:              "Сплавы на железо-никелевой основе",
	CategoryNickelBase:              "Сплавы на никелевой основе",
	CategoryElasticElements:         "Сплавы для упругих элементов",
	CategoryCorrosionResistant:      "Стали коррозионностойкие",
	CategoryHeatResistant:           "Стали жаростойкие",
	CategoryNichromeWire:            "Проволока нихром",
}

// Categories returns the category enumeration in declaration order.
func Categories() []Category {
	return append([]Category(nil), categories...)
}

// Valid reports whether c is a member of the enumeration.
func (c Category) Valid() bool {
	_, ok := categoryNames[c]
	return ok
}

// DisplayName returns the human-readable category label.
func (c Category) DisplayName() string {
	return categoryNames[c]
}

// ParseCategory accepts "NICKEL_BASE", "nickel_base" or "nickel-base".
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(s), "-", "_")))
	if !c.Valid() {
		return "", ErrInvalidCategory
	}
	return c, nil
}
