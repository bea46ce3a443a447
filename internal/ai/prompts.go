package ai

import "fmt"

const transactionPromptTemplate = `Matndan moliyaviy ma'lumot ajratib, JSON qaytaring:

Matn: %s

Format:
{"type": "income/expense", "amount": raqam, "category": "kategoriya", "description": "tavsif"}

Kategoriyalar - Chiqim: Oziq-ovqat, Transport, Uy-joy, Sog'liq, Ta'lim, O'yin-kulgi, Kiyim, Aloqa, Boshqa
Kirim: Maosh, Biznes, Sovg'a, Investitsiya, Boshqa

Faqat JSON, boshqa hech narsa.`

const diaryPromptTemplate = `Kundalik tahlil (3-4 jumla):

%s

1. Kayfiyat 2. Muhim voqea 3. Maslahat`

const weeklyReportTemplate = `Haftalik tahlil (5 jumla):

Kirim: %s | Chiqim: %s | Balans: %s
Eng ko'p: %s

Tahlil va maslahat bering.`

const monthlyReportTemplate = `Oylik hisobot (8-10 jumla):

Kirim: %s | Chiqim: %s | Balans: %s
Maqsadlar: %s

Batafsil tahlil va strategiya.`

// TransactionPrompt builds the structured-extraction prompt.
func TransactionPrompt(text string) string {
	return fmt.Sprintf(transactionPromptTemplate, text)
}

// DiaryPrompt builds the journal reflection prompt.
func DiaryPrompt(text string) string {
	return fmt.Sprintf(diaryPromptTemplate, text)
}

// WeeklyReportPrompt builds the weekly narrative prompt.
func WeeklyReportPrompt(income, expense, balance, topCategory string) string {
	return fmt.Sprintf(weeklyReportTemplate, income, expense, balance, topCategory)
}

// MonthlyReportPrompt builds the monthly narrative prompt.
func MonthlyReportPrompt(income, expense, balance, goalsProgress string) string {
	return fmt.Sprintf(monthlyReportTemplate, income, expense, balance, goalsProgress)
}
