package Controllers

import (
	"net/http"

	"TherapyTrack/Models"
	"TherapyTrack/SSE"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type patientInput struct {
	ID           uint   `json:"id"`
	Surname      string `json:"surname"`
	Name         string `json:"name"`
	NationalID   string `json:"national_id"`
	Phone        string `json:"phone"`
	MemberNumber string `json:"member_number"`
	Insurer      string `json:"insurer"`
}

func (input patientInput) validate() error {
	return validation.ValidateStruct(&input,
		validation.Field(&input.Surname, validation.Required, validation.Length(1, 100)),
		validation.Field(&input.Name, validation.Required, validation.Length(1, 100)),
	)
}

func (input patientInput) toModel() Models.Patient {
	patient := Models.Patient{
		Surname:      input.Surname,
		Name:         input.Name,
		NationalID:   input.NationalID,
		Phone:        input.Phone,
		MemberNumber: input.MemberNumber,
		Insurer:      input.Insurer,
	}
	patient.ID = input.ID
	return patient
}

func CreatePatient(c *gin.Context) {
	var input patientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}
	if err := input.validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	patient := input.toModel()
	patient.ID = 0
	if err := Models.CreatePatient(&patient); err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	SSE.Broadcaster.Broadcast("refresh")
	c.JSON(http.StatusOK, gin.H{"message": "Patient created successfully", "id": patient.ID})
}

func UpdatePatient(c *gin.Context) {
	var input patientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}
	if err := input.validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	patient := input.toModel()
	changes, err := Models.UpdatePatient(&patient)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	SSE.Broadcaster.Broadcast("refresh")
	c.JSON(http.StatusOK, gin.H{"message": "Patient updated successfully", "changes": changes})
}

func SearchPatients(c *gin.Context) {
	var input struct {
		Surname string `json:"surname"`
		Name    string `json:"name"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	patients, err := Models.SearchPatients(input.Surname, input.Name)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, patients)
}

func FetchAllPatients(c *gin.Context) {
	patients, err := Models.AllPatients()
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, patients)
}

func DeletePatient(c *gin.Context) {
	var input struct {
		ID uint `json:"id"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	changes, err := Models.DeletePatient(input.ID)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	SSE.Broadcaster.Broadcast("refresh")
	c.JSON(http.StatusOK, gin.H{"message": "Patient deleted successfully", "changes": changes})
}
