// Package format renders submission payloads into the HTML-lite notification
// messages sent to chat and email channels. Formatters are pure: the
// submission time is passed in, never read from the clock.
package format

import (
	"fmt"
	"strings"
	"time"

	"trusthome_backend/internal/submissions/domain"
)

const (
	fallbackNotSpecified = "Не указана"
	fallbackNone         = "Нет"
	fallbackUnanswered   = "Не отвечено"
)

// Property is the resolved listing data a booking message embeds.
type Property struct {
	ID        int64
	Title     string
	Location  string
	Price     int64
	Category  string
	Type      string
	Bedrooms  int
	Bathrooms int
	Area      float64
}

// Timestamp renders the submission time the way every message footer and
// email template expects it.
func Timestamp(t time.Time) string {
	return t.Format("02.01.2006, 15:04:05")
}

// HeroCapture renders the landing-page lead form message.
func HeroCapture(p domain.HeroCapture, at time.Time) string {
	var b strings.Builder
	b.WriteString("🌟 <b>Заявка с главной страницы</b>\n\n")
	writeContactFields(&b, p.Contact)
	fmt.Fprintf(&b, "\n⏰ <b>Время:</b> %s", Timestamp(at))
	return b.String()
}

// ContactMessage renders the contact form message.
func ContactMessage(p domain.ContactMessage, at time.Time) string {
	var b strings.Builder
	b.WriteString("🏠 <b>Новая заявка с сайта Trust Home</b>\n\n")
	writeContactFields(&b, p.Contact)
	fmt.Fprintf(&b, "📋 <b>Тема:</b> %s\n", orFallback(p.Subject, fallbackNotSpecified))
	fmt.Fprintf(&b, "\n💬 <b>Сообщение:</b>\n%s\n", p.Message)
	fmt.Fprintf(&b, "\n⏰ <b>Время:</b> %s", Timestamp(at))
	return b.String()
}

// Booking renders a single-property viewing request, embedding the resolved
// listing details.
func Booking(p domain.BookingRequest, prop Property, at time.Time) string {
	var b strings.Builder
	b.WriteString("🏠 <b>Новая заявка на просмотр недвижимости</b>\n\n")
	fmt.Fprintf(&b, "🆔 <b>ID объекта:</b> %d\n", prop.ID)
	fmt.Fprintf(&b, "🏡 <b>Объект:</b> %s\n", prop.Title)
	fmt.Fprintf(&b, "📍 <b>Местоположение:</b> %s\n", prop.Location)
	fmt.Fprintf(&b, "💰 <b>Цена:</b> %s\n", priceLabel(prop))
	fmt.Fprintf(&b, "🏠 <b>Тип:</b> %s (%s)\n", prop.Type, categoryLabel(prop.Category))
	fmt.Fprintf(&b, "🛏️ <b>Характеристики:</b> %d спален, %d ванных, %s кв.м\n", prop.Bedrooms, prop.Bathrooms, formatArea(prop.Area))
	b.WriteString("\n")
	writeContactBlock(&b, p.Contact)
	b.WriteString("\n")
	writeViewingBlock(&b, p.Viewing)
	fmt.Fprintf(&b, "\n💬 <b>Комментарий:</b> %s\n", orFallback(p.Comment, fallbackNone))
	fmt.Fprintf(&b, "\n⏰ <b>Время заявки:</b> %s", Timestamp(at))
	return b.String()
}

// GroupBooking renders a viewing request covering several properties, one
// sub-block per selected listing.
func GroupBooking(p domain.GroupBookingRequest, props []Property, at time.Time) string {
	var b strings.Builder
	b.WriteString("🏠 <b>Групповая заявка на просмотр недвижимости</b>\n\n")
	writeContactBlock(&b, p.Contact)
	b.WriteString("\n")
	writeViewingBlock(&b, p.Viewing)
	fmt.Fprintf(&b, "\n💬 <b>Комментарий:</b> %s\n", orFallback(p.Comment, fallbackNone))
	fmt.Fprintf(&b, "\n🏡 <b>Выбранные объекты (%d):</b>\n", len(props))
	for i, prop := range props {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "🏠 <b>ID: %d</b> - %s\n", prop.ID, prop.Title)
		fmt.Fprintf(&b, "📍 %s\n", prop.Location)
		fmt.Fprintf(&b, "💰 %s\n", priceLabel(prop))
		fmt.Fprintf(&b, "🏠 %s (%s)\n", prop.Type, categoryLabel(prop.Category))
		fmt.Fprintf(&b, "🛏️ %d спален, %d ванных, %s кв.м\n", prop.Bedrooms, prop.Bathrooms, formatArea(prop.Area))
	}
	fmt.Fprintf(&b, "\n⏰ <b>Время заявки:</b> %s", Timestamp(at))
	return b.String()
}

// QuizResult renders the quiz answers with their question numbers.
func QuizResult(p domain.QuizResult, at time.Time) string {
	var b strings.Builder
	b.WriteString("🎯 <b>Новый результат квиза Trust Home</b>\n\n")
	writeContactBlock(&b, p.Contact)
	b.WriteString("\n📋 <b>Ответы на вопросы:</b>\n")
	for i, qa := range p.Answers {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%d. %s\n   Ответ: %s\n", i+1, qa.Question, orFallback(qa.Answer, fallbackUnanswered))
	}
	fmt.Fprintf(&b, "\n⏰ <b>Время:</b> %s", Timestamp(at))
	return b.String()
}

// PropertyRequest renders the property search lead request.
func PropertyRequest(p domain.PropertyRequest, at time.Time) string {
	var b strings.Builder
	b.WriteString("📝 <b>Заявка на подбор недвижимости</b>\n\n")
	writeContactFields(&b, p.Contact)
	fmt.Fprintf(&b, "\n🏠 <b>Предпочтения:</b>\n%s\n", p.Preferences)
	fmt.Fprintf(&b, "\n💰 <b>Ценовой диапазон:</b> $%s - $%s\n", formatPrice(p.PriceMin), formatPrice(p.PriceMax))
	fmt.Fprintf(&b, "\n📅 <b>Предпочтительная дата:</b> %s\n", orFallback(p.Date, fallbackNotSpecified))
	fmt.Fprintf(&b, "🕐 <b>Время:</b> %s\n", p.TimeSlot.Label())
	fmt.Fprintf(&b, "🌍 <b>Язык:</b> %s\n", p.Language.Name())
	fmt.Fprintf(&b, "👥 <b>Количество:</b> %d чел.\n", p.Guests)
	fmt.Fprintf(&b, "🚗 <b>Сопровождение:</b> %s\n", yesNo(p.Transport))
	fmt.Fprintf(&b, "☕ <b>Удобства:</b> %s\n", refreshments(p.Viewing))
	fmt.Fprintf(&b, "👶 <b>Дети:</b> %s\n", yesNo(p.WithChildren))
	fmt.Fprintf(&b, "🐕 <b>Питомцы:</b> %s\n", yesNo(p.WithPets))
	fmt.Fprintf(&b, "\n⏰ <b>Время:</b> %s", Timestamp(at))
	return b.String()
}

// PropertySummary renders a short plain-text list of listings for the user
// confirmation email.
func PropertySummary(props []Property) string {
	lines := make([]string, 0, len(props))
	for _, p := range props {
		lines = append(lines, fmt.Sprintf("%s, %s (%s)", p.Title, p.Location, priceLabel(p)))
	}
	return strings.Join(lines, "\n")
}

func writeContactFields(b *strings.Builder, c domain.Contact) {
	fmt.Fprintf(b, "👤 <b>Имя:</b> %s\n", c.Name)
	fmt.Fprintf(b, "📧 <b>Email:</b> %s\n", c.Email)
	fmt.Fprintf(b, "📱 <b>Телефон:</b> %s\n", c.Phone)
}

func writeContactBlock(b *strings.Builder, c domain.Contact) {
	b.WriteString("👤 <b>Контактная информация:</b>\n")
	fmt.Fprintf(b, "• Имя: %s\n", c.Name)
	fmt.Fprintf(b, "• Email: %s\n", c.Email)
	fmt.Fprintf(b, "• Телефон: %s\n", c.Phone)
}

func writeViewingBlock(b *strings.Builder, v domain.Viewing) {
	b.WriteString("📅 <b>Детали просмотра:</b>\n")
	fmt.Fprintf(b, "• Дата: %s\n", v.Date)
	fmt.Fprintf(b, "• Время: %s\n", v.TimeSlot.Label())
	fmt.Fprintf(b, "• Язык: %s\n", v.Language.Name())
	fmt.Fprintf(b, "• Количество людей: %d\n", v.Guests)
	fmt.Fprintf(b, "• Сопровождение: %s\n", yesNo(v.Transport))
	fmt.Fprintf(b, "• Удобства: %s\n", refreshments(v))
	fmt.Fprintf(b, "• С детьми: %s\n", yesNo(v.WithChildren))
	fmt.Fprintf(b, "• С питомцами: %s\n", yesNo(v.WithPets))
}

// refreshments renders "Да"/details when refreshments were requested, "Нет"
// otherwise.
func refreshments(v domain.Viewing) string {
	if !v.Refreshments {
		return fallbackNone
	}
	if v.RefreshmentDetails != "" {
		return v.RefreshmentDetails
	}
	return "Да"
}

func yesNo(b bool) string {
	if b {
		return "Да"
	}
	return fallbackNone
}

func orFallback(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

func priceLabel(p Property) string {
	label := "$" + formatPrice(p.Price)
	if p.Category == "rent" {
		label += "/месяц"
	}
	return label
}

func categoryLabel(category string) string {
	switch category {
	case "rent":
		return "Аренда"
	case "sale":
		return "Продажа"
	default:
		return "Проект"
	}
}

// formatPrice groups digits by thousands, matching the site's price display.
func formatPrice(n int64) string {
	s := fmt.Sprintf("%d", n)
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	out := strings.Join(parts, ",")
	if neg {
		out = "-" + out
	}
	return out
}

// formatArea trims a trailing ".0" so whole areas render as integers.
func formatArea(a float64) string {
	s := fmt.Sprintf("%.1f", a)
	return strings.TrimSuffix(s, ".0")
}
