package catalog

import "alloy-catalog/internal/model"

func referenceProducts() []model.Product {
	return []model.Product{
		{
			ID:          "1",
			Name:        "Прецизионные сплавы с высоким электрическим сопротивлением",
			Category:    model.CategoryPrecisionHighResistance,
			Description: "Необходимое сочетание электрических свойств",
			Specifications: []string{
				"Высокое электрическое сопротивление",
				"Стабильность характеристик",
				"Широкий диапазон рабочих температур",
			},
			Alloys: []string{"Х15Ю5", "Х23Ю5", "Х23Ю5Т", "Х27Ю5Т", "Х15Н60",
				"Х15Н60-Н", "Х20Н80-Н", "ХН70Ю-Н", "ХН20ЮС"},
		},
		{
			ID:          "2",
			Name:        "Магнитно-мягкие сплавы",
			Category:    model.CategoryMagneticSoft,
			Description: "Высокая магнитная проницаемость и малая коэрцитивная сила в слабых полях",
			Specifications: []string{
				"Высокая магнитная проницаемость",
				"Малая коэрцитивная сила",
				"Низкие потери на перемагничивание",
			},
			Alloys: []string{"16Х", "34НКМ", "35НКХСП", "36КНМ", "40Н", "40НКМ",
				"45Н", "47НК", "47НКХ", "49К2Ф", "49К2ФА", "50Н",
				"50НХС", "50ХНС", "64Н", "68НМ", "76НХД", "77НМД",
				"79Н3М", "79НМ", "80Н2М", "80НХС", "81НМА", "83НФ", "83НФ-Ш"},
		},
		{
			ID:          "3",
			Name:        "Магнитно-мягкие с высокой индукцией",
			Category:    model.CategoryMagneticHighInduction,
			Description: "Высокая магнитная индукция технического насыщения",
			Specifications: []string{
				"Высокая магнитная индукция насыщения",
				"Отличные магнитные характеристики",
			},
			Alloys: []string{"27КХ", "49КФ"},
		},
		{
			ID:          "4",
			Name:        "Сплавы с заданным ТКЛР",
			Category:    model.CategoryTemperatureCoefficient,
			Description: "С заданным температурным коэффициентом линейного расширения",
			Specifications: []string{
				"Заданный ТКЛР",
				"Термостабильность",
				"Точные размеры при изменении температуры",
			},
			Alloys: []string{"36Н", "32НКД", "30НКД", "30НКД-ВИ", "29НК", "29НК-ВИ",
				"29НК-1", "29НК-ВИ-1", "38НКД", "38НКД-ВИ", "33НК",
				"33НК-ВИ", "47НХР", "47НЗХ", "47НХ", "48НХ", "47НД",
				"47НД-ВИ", "52Н", "52Н-ВИ", "42Н"},
		},
		{
			ID:          "5",
			Name:        "Сплавы на железо-никелевой основе",
			Category:    model.CategoryIronNickel,
			Description: "Жаропрочные сплавы на железо-никелевой основе",
			Specifications: []string{
				"Высокая жаропрочность",
				"Коррозионная стойкость",
				"Стабильность при высоких температурах",
			},
			Alloys: []string{"06ХН28МДТ (ЭИ943)", "ХН30МДБ (ЭК77)",
				"ХН40МДТЮ (ЭП543У)", "03ХН28МДТ (ЭП516)",
				"ХН40МДБ-ВИ (ЭП937-ВИ)"},
		},
		{
			ID:          "6",
			Name:        "Сплавы на никелевой основе",
			Category:    model.CategoryNickelBase,
			Description: "Жаропрочные сплавы на никелевой основе",
			Specifications: []string{
				"Высокая жаропрочность",
				"Отличная коррозионная стойкость",
				"Работа при экстремальных температурах",
			},
			Alloys: []string{"ХН65МВУ (ЭП760)", "ХН65МВ (ЭП567)", "НП2",
				"Н70МФВ-ВИ (ЭП814А-ВИ)", "ХН55МБЮ (ЭП666)",
				"ХН63МБ (ЭП758У)", "Н65М-ВИ (ЭП982-ВИ)",
				"ХН58В (ЭП795)", "НП1А-ИД", "НП1А"},
		},
		{
			ID:          "7",
			Name:        "Сплавы для упругих элементов",
			Category:    model.CategoryElasticElements,
			Description: "Специализированные сплавы для упругих элементов",
			Specifications: []string{
				"Высокие упругие свойства",
				"Усталостная прочность",
				"Стабильность характеристик",
			},
			Alloys: []string{"40КХНМ", "40КНХМВТЮ", "36НХТЮ5М", "36НХТЮ",
				"36НХТЮ8М", "42НХТЮ", "44НХТЮ"},
		},
		{
			ID:          "8",
			Name:        "Стали коррозионностойкие",
			Category:    model.CategoryCorrosionResistant,
			Description: "Специальные коррозионностойкие стали",
			Specifications: []string{
				"Высокая коррозионная стойкость",
				"Механическая прочность",
				"Долговечность",
			},
			Alloys: []string{"07Х17Н16ТЛ", "08Х17Н34В5Т3Ю2РЛ", "10Х17Н10Г4МБЛ",
				"110Г13Х2БРЛ", "12Х25Н5ТМФЛ", "15Х18Н22В6М2РЛ",
				"20Х12ВНМФЛ", "20Х25Н19С2Л", "35Х18Н24С2Л",
				"55Х18Г14С2ТЛ", "07Х18Н9Л", "09Х16Н4БЛ",
				"10Х18Н11БЛ", "120Г10ФЛ", "130Г14ХМФАЛ",
				"15Х23Н18Л", "20Х13Л", "20Х5МЛ", "35Х23Н7СЛ", "85Х4М5Ф2В6Л"},
		},
		{
			ID:          "9",
			Name:        "Стали жаростойкие",
			Category:    model.CategoryHeatResistant,
			Description: "Специальные жаростойкие стали",
			Specifications: []string{
				"Жаростойкость",
				"Окалиностойкость",
				"Работа при высоких температурах",
			},
			Alloys: []string{"20Х25Н18", "20Х25Н19С2", "20Х20Н14С2"},
		},
		{
			ID:          "10",
			Name:        "Проволока нихром",
			Category:    model.CategoryNichromeWire,
			Description: "Проволока нихром диаметром от 0,1 мм до 10,0 мм",
			Specifications: []string{
				"Диаметры: от 0,1 мм до 10,0 мм",
				"Высокое электрическое сопротивление",
				"Жаростойкость",
				"ГОСТ соответствие",
			},
			Alloys: []string{"Х20Н80", "Х15Н60"},
		},
	}
}
