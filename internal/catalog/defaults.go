package catalog

import "github.com/osse101/BabyBank_Go/internal/domain"

// DefaultCategories is the built-in category list
var DefaultCategories = []domain.Category{
	{ID: domain.CategoryClothing, Name: "Clothing", Icon: "shirt"},
	{ID: domain.CategoryToys, Name: "Toys", Icon: "gamepad-2"},
	{ID: domain.CategoryFeeding, Name: "Feeding", Icon: "baby"},
	{ID: domain.CategoryFurniture, Name: "Furniture", Icon: "armchair"},
	{ID: domain.CategoryStrollers, Name: "Strollers", Icon: "baby-stroller"},
	{ID: domain.CategoryBooks, Name: "Books", Icon: "book"},
	{ID: domain.CategorySafety, Name: "Safety", Icon: "shield"},
	{ID: domain.CategoryBathing, Name: "Bathing", Icon: "droplets"},
	{ID: domain.CategoryOther, Name: "Other", Icon: "more-horizontal"},
}

// DefaultConditions is the built-in condition scale, best first
var DefaultConditions = []domain.Condition{
	{ID: domain.ConditionNew, Name: "New", Description: "Never used, with tags"},
	{ID: domain.ConditionLikeNew, Name: "Like New", Description: "Used once or twice, excellent condition"},
	{ID: domain.ConditionGood, Name: "Good", Description: "Used but well maintained"},
	{ID: domain.ConditionFair, Name: "Fair", Description: "Shows wear but still functional"},
}

// DefaultAgeGroups is the built-in list of age bands
var DefaultAgeGroups = []string{
	"0-3 months",
	"3-6 months",
	"6-12 months",
	"1-2 years",
	"2-3 years",
	"3-5 years",
	"5+ years",
}

// DefaultClothingSizes are the size suggestions shown for clothing
var DefaultClothingSizes = []string{
	"Newborn",
	"0-3M",
	"3-6M",
	"6-9M",
	"9-12M",
	"12-18M",
	"18-24M",
	"2T",
	"3T",
	"4T",
	"5T",
}
