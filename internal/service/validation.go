package service

func validateIndex(index int) error {
	if index < 0 {
		return NewInvalidInputError([]FieldError{{Field: "id", Message: "must be >= 0"}})
	}
	return nil
}
