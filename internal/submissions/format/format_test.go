package format

import (
	"strings"
	"testing"
	"time"

	"trusthome_backend/internal/submissions/domain"
)

var testAt = time.Date(2025, time.March, 10, 14, 30, 5, 0, time.UTC)

func testContact() domain.Contact {
	return domain.Contact{Name: "Anna", Email: "anna@example.com", Phone: "+995555123456"}
}

func testViewing() domain.Viewing {
	return domain.Viewing{
		Date:     "2025-03-15",
		TimeSlot: domain.SlotAfternoon,
		Language: domain.LangEnglish,
		Guests:   3,
	}
}

func testProperty() Property {
	return Property{
		ID:        42,
		Title:     "Sea View Apartment",
		Location:  "Batumi",
		Price:     1200,
		Category:  "rent",
		Type:      "Апартаменты",
		Bedrooms:  2,
		Bathrooms: 1,
		Area:      65.5,
	}
}

func TestFormattersAreDeterministic(t *testing.T) {
	contact := domain.ContactMessage{
		Contact: testContact(),
		Subject: "Вопрос",
		Message: "Здравствуйте",
	}
	first := ContactMessage(contact, testAt)
	second := ContactMessage(contact, testAt)
	if first != second {
		t.Fatal("same payload and time must produce identical messages")
	}

	booking := domain.BookingRequest{PropertyID: 42, Viewing: testViewing(), Contact: testContact()}
	if Booking(booking, testProperty(), testAt) != Booking(booking, testProperty(), testAt) {
		t.Fatal("booking formatter must be deterministic")
	}
}

func TestTimestampFooter(t *testing.T) {
	msg := HeroCapture(domain.HeroCapture{Contact: testContact()}, testAt)
	if !strings.HasSuffix(msg, "10.03.2025, 14:30:05") {
		t.Fatalf("message must end with the injected timestamp, got:\n%s", msg)
	}
}

func TestContactMessageFallbacks(t *testing.T) {
	p := domain.ContactMessage{Contact: testContact(), Message: "Привет"}
	msg := ContactMessage(p, testAt)
	if !strings.Contains(msg, "📋 <b>Тема:</b> Не указана") {
		t.Fatalf("empty subject must render the placeholder, got:\n%s", msg)
	}

	p.Subject = "Аренда"
	msg = ContactMessage(p, testAt)
	if !strings.Contains(msg, "📋 <b>Тема:</b> Аренда") {
		t.Fatalf("subject must be rendered, got:\n%s", msg)
	}
}

func TestBookingMessageFields(t *testing.T) {
	v := testViewing()
	v.Transport = true
	v.Refreshments = true
	v.RefreshmentDetails = "Кофе"
	p := domain.BookingRequest{PropertyID: 42, Viewing: v, Contact: testContact()}

	msg := Booking(p, testProperty(), testAt)

	for _, want := range []string{
		"🆔 <b>ID объекта:</b> 42",
		"🏡 <b>Объект:</b> Sea View Apartment",
		"💰 <b>Цена:</b> $1,200/месяц",
		"(Аренда)",
		"2 спален, 1 ванных, 65.5 кв.м",
		"• Время: Afternoon (12:00 - 17:00)",
		"• Язык: English",
		"• Сопровождение: Да",
		"• Удобства: Кофе",
		"• С детьми: Нет",
		"💬 <b>Комментарий:</b> Нет",
	} {
		if !strings.Contains(msg, want) {
			t.Fatalf("booking message missing %q:\n%s", want, msg)
		}
	}
}

func TestBookingSaleHasNoMonthlySuffix(t *testing.T) {
	prop := testProperty()
	prop.Category = "sale"
	p := domain.BookingRequest{PropertyID: 42, Viewing: testViewing(), Contact: testContact()}

	msg := Booking(p, prop, testAt)
	if strings.Contains(msg, "/месяц") {
		t.Fatalf("sale listing must not carry the monthly suffix:\n%s", msg)
	}
	if !strings.Contains(msg, "(Продажа)") {
		t.Fatalf("sale category label missing:\n%s", msg)
	}
}

func TestGroupBookingRendersOneBlockPerProperty(t *testing.T) {
	second := testProperty()
	second.ID = 43
	second.Title = "City Center Flat"
	second.Category = "sale"
	second.Price = 185000

	p := domain.GroupBookingRequest{
		PropertyIDs: []int64{42, 43},
		Viewing:     testViewing(),
		Contact:     testContact(),
	}
	msg := GroupBooking(p, []Property{testProperty(), second}, testAt)

	if !strings.Contains(msg, "🏡 <b>Выбранные объекты (2):</b>") {
		t.Fatalf("selected properties header missing:\n%s", msg)
	}
	if !strings.Contains(msg, "🏠 <b>ID: 42</b> - Sea View Apartment") {
		t.Fatalf("first property block missing:\n%s", msg)
	}
	if !strings.Contains(msg, "🏠 <b>ID: 43</b> - City Center Flat") {
		t.Fatalf("second property block missing:\n%s", msg)
	}
	if !strings.Contains(msg, "$185,000\n") {
		t.Fatalf("sale price must have no monthly suffix:\n%s", msg)
	}
}

func TestQuizResultNumbersAnswers(t *testing.T) {
	p := domain.QuizResult{
		Answers: []domain.QuizAnswer{
			{Question: "Сколько спален?", Answer: "Две"},
			{Question: "Район?", Answer: ""},
		},
		Contact: testContact(),
	}
	msg := QuizResult(p, testAt)

	if !strings.Contains(msg, "1. Сколько спален?\n   Ответ: Две") {
		t.Fatalf("first answer missing:\n%s", msg)
	}
	if !strings.Contains(msg, "2. Район?\n   Ответ: Не отвечено") {
		t.Fatalf("skipped answer must render placeholder:\n%s", msg)
	}
}

func TestPropertyRequestMessage(t *testing.T) {
	p := domain.PropertyRequest{
		Preferences: "Квартира у моря",
		PriceMin:    500,
		PriceMax:    1500,
		Viewing:     testViewing(),
		Contact:     testContact(),
	}
	p.Date = ""
	msg := PropertyRequest(p, testAt)

	if !strings.Contains(msg, "💰 <b>Ценовой диапазон:</b> $500 - $1,500") {
		t.Fatalf("price range missing:\n%s", msg)
	}
	if !strings.Contains(msg, "📅 <b>Предпочтительная дата:</b> Не указана") {
		t.Fatalf("empty date must render placeholder:\n%s", msg)
	}
}

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{950, "950"},
		{1200, "1,200"},
		{185000, "185,000"},
		{1234567, "1,234,567"},
	}
	for _, tt := range tests {
		if got := formatPrice(tt.in); got != tt.want {
			t.Fatalf("formatPrice(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPropertySummary(t *testing.T) {
	got := PropertySummary([]Property{testProperty()})
	want := "Sea View Apartment, Batumi ($1,200/месяц)"
	if got != want {
		t.Fatalf("PropertySummary = %q, want %q", got, want)
	}
}
