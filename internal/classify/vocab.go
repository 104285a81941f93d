package classify

// Family vocabularies. Each is declared in its published matching order;
// reordering changes classification results for strings containing more than
// one family substring.

// LaunchedBrandFamilies is the brand vocabulary for the launched segment.
func LaunchedBrandFamilies() []string {
	return []string{
		"Alcatel", "Apple", "Google", "Infinix", "IQOO", "Itel", "Motorola",
		"Nokia", "OnePlus", "Oppo", "Poco", "Realme", "Samsung", "Tecno", "Vivo",
		"Xiaomi", "ZTE",
	}
}

// UpcomingBrandFamilies is the wider brand vocabulary for the
// upcoming/rumored segment.
func UpcomingBrandFamilies() []string {
	return []string{
		"Alcatel", "Apple", "Google", "Infinix", "HTC", "Honor", "IQOO", "Itel",
		"Lava", "Moondrop", "Motorola", "Nokia", "Nubia", "OnePlus", "Oppo",
		"Poco", "Realme", "Sharp", "Samsung", "Sony Xperia", "Tecno", "Tesla",
		"Vivo", "Xiaomi", "ZTE",
	}
}

// LaunchedProcessorFamilies is the chip vocabulary for the launched segment.
func LaunchedProcessorFamilies() []string {
	return []string{
		"Snapdragon", "Dimensity", "Helio", "Exynos", "MediaTek", "Bionic",
		"Tensor", "Unisoc", "Tiger", "Intel", "AMD", "Qualcomm",
	}
}

// UpcomingProcessorFamilies is the chip vocabulary for the upcoming/rumored
// segment.
func UpcomingProcessorFamilies() []string {
	return []string{
		"Snapdragon", "Dimensity", "Helio", "Exynos", "MediaTek", "Bionic",
		"Tensor", "Unisoc", "Tiger", "Intel", "AMD", "Qualcomm", "Apple", "Xring",
	}
}
