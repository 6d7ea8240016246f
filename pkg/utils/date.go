package utils

import "time"

const DateLayout = "2006-01-02"

// ParseDate interpreta datas no formato YYYY-MM-DD. Retorna nil para string vazia.
func ParseDate(dateStr string) (*time.Time, error) {
	if dateStr == "" {
		return nil, nil
	}

	date, err := time.Parse(DateLayout, dateStr)
	if err != nil {
		return nil, err
	}

	return &date, nil
}

func FormatDate(date time.Time) string {
	return date.Format(DateLayout)
}

// MonthsBetween calcula o número de meses de calendário entre duas datas
func MonthsBetween(start, end time.Time) int {
	return (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month())
}

// StartOfISOWeek retorna a segunda-feira da semana ISO da data informada
func StartOfISOWeek(date time.Time) time.Time {
	weekday := int(date.Weekday())
	if weekday == 0 {
		weekday = 7
	}

	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	return day.AddDate(0, 0, -(weekday - 1))
}

// StartOfMonth retorna o primeiro dia do mês da data informada
func StartOfMonth(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, time.UTC)
}
