package ai

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"finera/internal/models"
)

// extractionPromptTemplate instructs the provider to emit the strict
// extraction contract. Category names come from the seeded taxonomy; the
// fallback name covers rows the model cannot place. The prompt is Turkish
// because the statements and the taxonomy are.
const extractionPromptTemplate = `Aşağıdaki banka ekstresi metnini analiz et.
Metinden ekstrenin ait olduğu dönemi (YIL ve AY olarak) ve tüm harcama/gelir işlemlerini çıkar.
Her işlem için, aşağıdaki listede verilen Türkçe kategori isimlerinden en uygun olanını belirle ve "categoryName" alanına yaz.
Eğer işlem açıklaması listedeki hiçbir kategoriyle anlamlı bir şekilde eşleşmiyorsa veya emin değilsen, kategori adı olarak "%s" kullan.

Geçerli Türkçe Kategori İsimleri:
%s

İşlem tarihi YYYY-MM-DD formatında olmalı. İşlem tutarı sayısal bir değer olmalı (harcamalar için negatif, gelirler için pozitif).
Sadece ve sadece aşağıdaki JSON formatında bir yanıt ver, başka hiçbir metin ekleme:
{
  "periodYear": 2024,
  "periodMonth": 1,
  "transactions": [
    {
      "date": "YYYY-MM-DD",
      "description": "İŞLEM AÇIKLAMASI",
      "amount": -123.45,
      "categoryName": "KATEGORİ_ADI"
    }
  ]
}

Analiz edilecek metin:
>>>
%s
>>>`

// buildExtractionPrompt embeds the category vocabulary and cleaned
// statement text into the shared extraction prompt.
func buildExtractionPrompt(statementText string, categoryNames []string) string {
	vocabulary := strings.Join(categoryNames, ", ")
	return fmt.Sprintf(extractionPromptTemplate, models.FallbackCategoryNameTR, vocabulary, statementText)
}

const advicePromptTemplate = `Bir kişisel finans asistanısın. Kullanıcı aylık %s TL tasarruf etmek istiyor.
Kullanıcının mevcut aylık kategori harcamaları aşağıda listelenmiştir.
Hedefe ulaşmak için hangi kategorilerde ne kadar kesinti yapılabileceğini öner.
Sadece ve sadece aşağıdaki JSON formatında bir dizi döndür, başka hiçbir metin ekleme:
[
  {
    "categoryName": "KATEGORİ_ADI",
    "suggestedReduction": 100.00,
    "reason": "KISA GEREKÇE"
  }
]

Mevcut harcamalar:
%s`

// buildAdvicePrompt renders the savings-advice prompt from the goal and
// current per-category spending.
func buildAdvicePrompt(goal decimal.Decimal, spending []CategorySpending) string {
	var sb strings.Builder
	for _, s := range spending {
		fmt.Fprintf(&sb, "- %s: %s TL\n", s.CategoryName, s.Amount.StringFixed(2))
	}
	return fmt.Sprintf(advicePromptTemplate, goal.StringFixed(2), sb.String())
}
