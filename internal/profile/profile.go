package profile

import "errors"

// SecondaryType is a related Enneagram type with a 1-5 compatibility score.
type SecondaryType struct {
	Type          int    `json:"type"`
	TypeName      string `json:"typeName"`
	Compatibility int    `json:"compatibility"`
}

// TypeProfile is the static descriptive report for one Enneagram type.
type TypeProfile struct {
	TypeName            string          `json:"typeName"`
	Summary             string          `json:"summary"`
	Description         string          `json:"description"`
	PositiveTraits      []string        `json:"positiveTraits"`
	NegativeTraits      []string        `json:"negativeTraits"`
	SecondaryTypes      []SecondaryType `json:"secondaryTypes"`
	MotivatingFactors   []string        `json:"motivatingFactors"`
	DemotivatingFactors []string        `json:"demotivatingFactors"`
	LearningEnvironment []string        `json:"learningEnvironment"`
	LearningStyle       []string        `json:"learningStyle"`
	TeacherApproach     []string        `json:"teacherApproach"`
	SocialLife          string          `json:"socialLife"`
	ParentAdvice        []string        `json:"parentAdvice"`
	CareerTraits        []string        `json:"careerTraits"`
	SuitableCareers     []string        `json:"suitableCareers"`
}

// ErrProfileNotFound is returned when a type has no populated profile.
var ErrProfileNotFound = errors.New("type profile not found")

// Content for types 2-9 is still pending from the content team; until it
// lands, Resolve reports those types as missing.
var profiles = map[int]*TypeProfile{
	1: {
		TypeName:    "Mükemmeliyetçi",
		Summary:     "Prensipli, amaçlı, kendini kontrol eden ve mükemmeliyetçi",
		Description: "Tip 1'ler, doğru ve yanlışı ayırt etme konusunda güçlü bir içgüdüye sahiptir. Düzenli, sorumluluk sahibi ve ilkeli kişilerdir. Kendilerine ve başkalarına karşı yüksek standartlar belirlerler.",
		PositiveTraits: []string{
			"Dürüst", "Güvenilir", "İlkeli", "Organize", "Sorumluluk sahibi",
		},
		NegativeTraits: []string{
			"Aşırı eleştirel", "Katı", "Mükemmeliyetçi", "Kendini ve başkalarını yargılayıcı",
		},
		SecondaryTypes: []SecondaryType{
			{Type: 9, TypeName: "Barışçı", Compatibility: 4},
			{Type: 2, TypeName: "Yardımsever", Compatibility: 3},
		},
		MotivatingFactors: []string{
			"Doğru olanı yapmak", "Düzen ve yapı", "Adalet", "Kendini geliştirme",
		},
		DemotivatingFactors: []string{
			"Hata yapmak", "Adaletsizlik", "Düzensizlik", "Kurallara uyulmaması",
		},
		LearningEnvironment: []string{
			"Düzenli ve yapılandırılmış ortamlar", "Net beklentiler ve kurallar", "Adil değerlendirme sistemleri",
		},
		LearningStyle: []string{
			"Sistematik ve metodolojik öğrenme", "Detaylara dikkat", "Mükemmeliyetçi yaklaşım",
		},
		TeacherApproach: []string{
			"Net yönergeler ve beklentiler", "Adil ve tutarlı değerlendirme", "Yapıcı geri bildirim",
		},
		SocialLife: "Tip 1'ler sosyal ilişkilerinde dürüst ve güvenilirdir. İlkeli davranışları ve sorumluluk duyguları ile tanınırlar. Ancak bazen katı standartları nedeniyle ilişkilerde zorluk yaşayabilirler.",
		ParentAdvice: []string{
			"Hata yapmanın normal olduğunu öğretin", "Esnekliği teşvik edin", "Kendilerine karşı daha anlayışlı olmalarını destekleyin",
		},
		CareerTraits: []string{
			"Detaylara dikkat", "Yüksek standartlar", "Organize çalışma", "Sorumluluk duygusu",
		},
		SuitableCareers: []string{
			"Hukuk", "Eğitim", "Kalite kontrol", "Proje yönetimi", "Muhasebe",
		},
	},
}

// Resolve returns the static profile for a personality type.
func Resolve(personalityType int) (*TypeProfile, error) {
	p, ok := profiles[personalityType]
	if !ok {
		return nil, ErrProfileNotFound
	}
	return p, nil
}
