package model

// HomeData is the content of the landing screen.
type HomeData struct {
	Title      string         `json:"title"`
	Subtitle   string         `json:"subtitle"`
	Tagline    string         `json:"tagline"`
	Advantages []Feature      `json:"advantages"`
	Featured   []FeaturedItem `json:"featured"`
}

// Feature is a titled blurb.
type Feature struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// FeaturedItem links a blurb to a catalogue category.
type FeaturedItem struct {
	Feature
	Categories []Category `json:"categories"`
}

// DefaultHomeData returns the static landing content.
func DefaultHomeData() HomeData {
	return HomeData{
		Title:    "Мценскпрокат",
		Subtitle: "Завод прецизионных сплавов",
		Tagline:  "Производитель прецизионных, медных и никелевых сплавов",
		Advantages: []Feature{
			{Title: "Прямые поставки", Description: "От производителя без посредников"},
			{Title: "Широкий ассортимент", Description: "Более 100 видов сплавов и сталей"},
			{Title: "Оптовые цены", Description: "Выгодные условия для оптовых покупателей"},
			{Title: "Высокое качество", Description: "Соответствие ГОСТ и международным стандартам"},
		},
		Featured: []FeaturedItem{
			{
				Feature:    Feature{Title: "Прецизионные сплавы", Description: "С высоким электрическим сопротивлением"},
				Categories: []Category{CategoryPrecisionHighResistance},
			},
			{
				Feature:    Feature{Title: "Магнитно-мягкие сплавы", Description: "Высокая магнитная проницаемость"},
				Categories: []Category{CategoryMagneticSoft, CategoryMagneticHighInduction},
			},
			{
				Feature:    Feature{Title: "Проволока нихром", Description: "Диаметры от 0,1 мм до 10,0 мм"},
				Categories: []Category{CategoryNichromeWire},
			},
			{
				Feature:    Feature{Title: "Специальные стали", Description: "Коррозионностойкие и жаростойкие"},
				Categories: []Category{CategoryCorrosionResistant, CategoryHeatResistant},
			},
		},
	}
}
