package validator

import "github.com/go-playground/validator/v10"

func RegisterCustomValidations(validate *validator.Validate) {
	validate.RegisterValidation("lat", validateLat)
	validate.RegisterValidation("lng", validateLng)
	validate.RegisterValidation("danger_category", validateDangerCategory)
}

func validateLat(fl validator.FieldLevel) bool {
	lat := fl.Field().Float()
	return lat >= -90.0 && lat <= 90.0
}

func validateLng(fl validator.FieldLevel) bool {
	lng := fl.Field().Float()
	return lng >= -180.0 && lng <= 180.0
}

// closed set, mirrors domain.DangerCategory
func validateDangerCategory(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "POTHOLE", "ACCIDENT_SPOT", "POORLY_LIT_ROAD", "CRIME_PRONE":
		return true
	}
	return false
}
