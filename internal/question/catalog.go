package question

// Question is one item of the fixed Enneagram questionnaire. Type is the
// Enneagram dimension (1-9) the item measures.
type Question struct {
	ID   int    `json:"id"`
	Text string `json:"text"`
	Type int    `json:"type"`
}

var catalog = []Question{
	{ID: 1, Text: "Genellikle düzenli ve planlı olmayı tercih ederim.", Type: 1},
	{ID: 2, Text: "Başkalarına yardım etmek benim için önemlidir.", Type: 2},
	{ID: 3, Text: "Başarılı olmak ve takdir edilmek benim için çok önemlidir.", Type: 3},
	{ID: 4, Text: "Kendimi sıklıkla farklı ve özel hissederim.", Type: 4},
	{ID: 5, Text: "Bilgi toplamak ve analiz etmek benim için önemlidir.", Type: 5},
	{ID: 6, Text: "Güvenlik ve istikrar benim için çok önemlidir.", Type: 6},
	{ID: 7, Text: "Yeni deneyimler ve eğlence aramayı severim.", Type: 7},
	{ID: 8, Text: "Kontrolü elimde tutmak ve güçlü olmak benim için önemlidir.", Type: 8},
	{ID: 9, Text: "Çatışmadan kaçınmak ve huzuru korumak benim için önemlidir.", Type: 9},
}

var byID = func() map[int]Question {
	m := make(map[int]Question, len(catalog))
	for _, q := range catalog {
		m[q.ID] = q
	}
	return m
}()

// All returns the questionnaire in presentation order.
func All() []Question {
	return catalog
}

// ByID looks up a question by its id.
func ByID(id int) (Question, bool) {
	q, ok := byID[id]
	return q, ok
}
