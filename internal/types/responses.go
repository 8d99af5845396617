package types

// UserResponse is the public projection of a user; the password hash is
// never serialized.
type UserResponse struct {
	ID                uint   `json:"id"`
	Username          string `json:"username"`
	Email             string `json:"email"`
	ExpectedBirthDate string `json:"expected_birth_date"`
	BloodGroup        string `json:"blood_group"`
	Address           string `json:"address"`
	Pincode           string `json:"pincode"`
	ContactNumber     string `json:"contact_number"`
}

// HealthRecordResponse keeps the original wire casing, including the
// lowercase "calorieintake" and "numberofworkout" keys.
type HealthRecordResponse struct {
	Date           string  `json:"date"`
	HeartRate      int     `json:"heart_rate"`
	BloodPressure  string  `json:"blood_pressure"`
	Footsteps      int     `json:"footsteps"`
	MeditationTime int     `json:"meditation_time"`
	Temperature    float64 `json:"temperature"`
	SleepDuration  int     `json:"sleep_duration"`
	WaterIntake    int     `json:"water_intake"`
	CalorieIntake  int     `json:"calorieintake"`
	WorkoutCount   int     `json:"numberofworkout"`
}

// AppointmentResponse exposes the stored doctor_name as "title".
type AppointmentResponse struct {
	ID       uint   `json:"id"`
	Title    string `json:"title"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	Location string `json:"location"`
}

type JournalResponse struct {
	ID       uint   `json:"id"`
	Title    string `json:"title"`
	Mood     string `json:"mood"`
	Thoughts string `json:"thoughts"`
	Date     string `json:"date"`
}

type MealResponse struct {
	ID       uint   `json:"id"`
	MealType string `json:"meal_type"`
	MealName string `json:"meal_name"`
	MealDate string `json:"meal_date"`
	MealTime string `json:"meal_time"`
}
