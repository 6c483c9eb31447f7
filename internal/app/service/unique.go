package service

// noOtherRows - общий примитив проверки уникальности/доступности:
// выбрать строки по точному совпадению ключа, выкинуть исключённый id
// (чтобы запись при обновлении не конфликтовала сама с собой) и
// убедиться, что ничего не осталось. Проверка неатомарна с последующей
// записью; гарантию целостности даёт уникальный индекс в базе, где он
// объявлен.
func noOtherRows[T any](rows []T, rowID func(T) int, excludeID *int) bool {
	for _, row := range rows {
		if excludeID != nil && rowID(row) == *excludeID {
			continue
		}
		return false
	}
	return true
}
