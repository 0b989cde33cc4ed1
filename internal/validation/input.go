package validation

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Константы валидации
const (
	MinPersonNameLength  = 1
	MaxPersonNameLength  = 100
	MinCompanyNameLength = 2
	MaxCompanyNameLength = 200
	MinJobTitleLength    = 3
	MaxJobTitleLength    = 200
	MaxNotesLength       = 5000
	MaxFeedbackLength    = 5000
	MaxRoleTitleLength   = 200
	MaxURLLength         = 500
	MaxPhoneLength       = 30
	MinSalary            = 0.0
	MaxSalary            = 100000000.0 // 100 миллионов
)

// ValidateLength проверяет длину строки.
func ValidateLength(fieldName, value string, min, max int) error {
	length := utf8.RuneCountInString(value)
	if min > 0 && length < min {
		return fmt.Errorf("%s должен быть не менее %d символов", fieldName, min)
	}
	if max > 0 && length > max {
		return fmt.Errorf("%s должен быть не более %d символов", fieldName, max)
	}
	return nil
}

// ValidateEmail проверяет формат email.
func ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email обязателен")
	}

	email = strings.TrimSpace(email)
	email = strings.ToLower(email)

	// Базовая проверка формата
	if !strings.Contains(email, "@") {
		return fmt.Errorf("email должен содержать символ @")
	}

	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return fmt.Errorf("некорректный формат email")
	}

	localPart := parts[0]
	domainPart := parts[1]

	if len(localPart) == 0 || len(localPart) > 64 {
		return fmt.Errorf("локальная часть email должна быть от 1 до 64 символов")
	}

	if len(domainPart) == 0 || len(domainPart) > 255 {
		return fmt.Errorf("доменная часть email должна быть от 1 до 255 символов")
	}

	if !strings.Contains(domainPart, ".") {
		return fmt.Errorf("доменная часть email должна содержать точку")
	}

	// Проверка на валидные символы в локальной части
	emailRegex := regexp.MustCompile(`^[a-z0-9._+-]+$`)
	if !emailRegex.MatchString(localPart) {
		return fmt.Errorf("локальная часть email содержит недопустимые символы")
	}

	// Проверка на валидные символы в доменной части
	domainRegex := regexp.MustCompile(`^[a-z0-9.-]+\.[a-z]{2,}$`)
	if !domainRegex.MatchString(domainPart) {
		return fmt.Errorf("доменная часть email имеет некорректный формат")
	}

	return nil
}

// ValidateNonEmpty проверяет, что строка не пустая.
func ValidateNonEmpty(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%s не может быть пустым", fieldName)
	}
	return nil
}

// ValidatePersonName проверяет имя и фамилию кандидата.
func ValidatePersonName(firstName, lastName string) error {
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)

	if firstName == "" {
		return fmt.Errorf("имя кандидата обязательно")
	}
	if lastName == "" {
		return fmt.Errorf("фамилия кандидата обязательна")
	}

	if err := ValidateLength("имя", firstName, MinPersonNameLength, MaxPersonNameLength); err != nil {
		return err
	}
	if err := ValidateLength("фамилия", lastName, MinPersonNameLength, MaxPersonNameLength); err != nil {
		return err
	}

	nameRegex := regexp.MustCompile(`^[a-zA-Zа-яА-ЯёЁ\s\-'.]+$`)
	if !nameRegex.MatchString(firstName) {
		return fmt.Errorf("имя содержит недопустимые символы")
	}
	if !nameRegex.MatchString(lastName) {
		return fmt.Errorf("фамилия содержит недопустимые символы")
	}

	return nil
}

// ValidateCompanyName проверяет название компании-клиента.
func ValidateCompanyName(name string) error {
	if name == "" {
		return fmt.Errorf("название компании обязательно")
	}

	name = strings.TrimSpace(name)

	if err := ValidateLength("название компании", name, MinCompanyNameLength, MaxCompanyNameLength); err != nil {
		return err
	}

	return nil
}

// ValidateJobTitle проверяет название вакансии.
func ValidateJobTitle(title string) error {
	if title == "" {
		return fmt.Errorf("название вакансии обязательно")
	}

	title = strings.TrimSpace(title)

	if err := ValidateLength("название вакансии", title, MinJobTitleLength, MaxJobTitleLength); err != nil {
		return err
	}

	return nil
}

// ValidatePhone проверяет номер телефона.
func ValidatePhone(phone *string) error {
	if phone == nil || *phone == "" {
		return nil
	}

	phoneStr := strings.TrimSpace(*phone)

	if err := ValidateLength("телефон", phoneStr, 0, MaxPhoneLength); err != nil {
		return err
	}

	phoneRegex := regexp.MustCompile(`^\+?[0-9\s\-().]+$`)
	if !phoneRegex.MatchString(phoneStr) {
		return fmt.Errorf("телефон содержит недопустимые символы")
	}

	return nil
}

// ValidateOptionalURL проверяет необязательную ссылку.
func ValidateOptionalURL(fieldName string, link *string) error {
	if link != nil && *link != "" {
		linkStr := strings.TrimSpace(*link)

		if err := ValidateLength(fieldName, linkStr, 0, MaxURLLength); err != nil {
			return err
		}

		// Проверка формата URL
		parsedURL, err := url.Parse(linkStr)
		if err != nil {
			return fmt.Errorf("%s: некорректный формат URL", fieldName)
		}

		if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
			return fmt.Errorf("%s: ссылка должна начинаться с http:// или https://", fieldName)
		}

		if parsedURL.Host == "" {
			return fmt.Errorf("%s: ссылка должна содержать доменное имя", fieldName)
		}
	}
	return nil
}

// ValidateSalary проверяет размер зарплаты.
func ValidateSalary(salary float64) error {
	if salary < MinSalary {
		return fmt.Errorf("зарплата не может быть отрицательной")
	}
	if salary > MaxSalary {
		return fmt.Errorf("зарплата не может превышать %.0f", MaxSalary)
	}
	return nil
}

// ValidateNotes проверяет произвольные заметки.
func ValidateNotes(notes *string) error {
	if notes != nil {
		if err := ValidateLength("заметки", *notes, 0, MaxNotesLength); err != nil {
			return err
		}
	}
	return nil
}

// ValidateFeedback проверяет отзыв интервьюера.
func ValidateFeedback(feedback *string) error {
	if feedback != nil {
		if err := ValidateLength("отзыв", *feedback, 0, MaxFeedbackLength); err != nil {
			return err
		}
	}
	return nil
}
