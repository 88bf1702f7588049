package domain

// DefaultCategories is the canonical category vocabulary, expense categories
// first, income categories last.
var DefaultCategories = []string{
	"Food & Dining",
	"Transport",
	"Utilities",
	"Shopping",
	"Health",
	"Entertainment",
	"Education",
	"Savings",
	"Rent",
	"Salary",
	"Investment",
	"Others",
}

var expenseCategories = []string{
	"Food & Dining",
	"Transport",
	"Utilities",
	"Shopping",
	"Health",
	"Entertainment",
	"Education",
	"Savings",
	"Rent",
	"Others",
}

var incomeCategories = []string{
	"Salary",
	"Investment",
	"Others",
}

// CategoriesByType returns the vocabulary filtered by transaction type.
// Note "Others" appears on both sides.
func CategoriesByType(isExpense bool) []string {
	src := incomeCategories
	if isExpense {
		src = expenseCategories
	}
	out := make([]string, len(src))
	copy(out, src)
	return out
}

// IsExpenseCategory reports whether the category is part of the expense vocabulary.
func IsExpenseCategory(category string) bool {
	for _, c := range expenseCategories {
		if c == category {
			return true
		}
	}
	return false
}

// IsIncomeCategory reports whether the category is part of the income vocabulary.
func IsIncomeCategory(category string) bool {
	for _, c := range incomeCategories {
		if c == category {
			return true
		}
	}
	return false
}
