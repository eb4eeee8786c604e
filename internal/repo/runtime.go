// Code generated by ent, DO NOT EDIT.

package repo

import (
	"time"

	"github.com/google/uuid"
	"github.com/telecare/telecare_backend/internal/repo/assignment"
	"github.com/telecare/telecare_backend/internal/repo/chatmessage"
	"github.com/telecare/telecare_backend/internal/repo/chatroom"
	"github.com/telecare/telecare_backend/internal/repo/doctor"
	"github.com/telecare/telecare_backend/internal/repo/onboardinginsurance"
	"github.com/telecare/telecare_backend/internal/repo/onboardingmedical"
	"github.com/telecare/telecare_backend/internal/repo/onboardingpersonal"
	"github.com/telecare/telecare_backend/internal/repo/onlinestatus"
	"github.com/telecare/telecare_backend/internal/repo/patient"
	"github.com/telecare/telecare_backend/internal/repo/user"
	"github.com/telecare/telecare_backend/internal/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	assignmentMixin := schema.Assignment{}.Mixin()
	assignmentMixinFields0 := assignmentMixin[0].Fields()
	_ = assignmentMixinFields0
	assignmentMixinFields1 := assignmentMixin[1].Fields()
	_ = assignmentMixinFields1
	assignmentFields := schema.Assignment{}.Fields()
	_ = assignmentFields
	// assignmentDescCreatedAt is the schema descriptor for created_at field.
	assignmentDescCreatedAt := assignmentMixinFields1[0].Descriptor()
	// assignment.DefaultCreatedAt holds the default value on creation for the created_at field.
	assignment.DefaultCreatedAt = assignmentDescCreatedAt.Default.(func() time.Time)
	// assignmentDescUpdatedAt is the schema descriptor for updated_at field.
	assignmentDescUpdatedAt := assignmentMixinFields1[1].Descriptor()
	// assignment.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	assignment.DefaultUpdatedAt = assignmentDescUpdatedAt.Default.(func() time.Time)
	// assignment.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	assignment.UpdateDefaultUpdatedAt = assignmentDescUpdatedAt.UpdateDefault.(func() time.Time)
	// assignmentDescActive is the schema descriptor for active field.
	assignmentDescActive := assignmentFields[2].Descriptor()
	// assignment.DefaultActive holds the default value on creation for the active field.
	assignment.DefaultActive = assignmentDescActive.Default.(bool)
	// assignmentDescID is the schema descriptor for id field.
	assignmentDescID := assignmentMixinFields0[0].Descriptor()
	// assignment.DefaultID holds the default value on creation for the id field.
	assignment.DefaultID = assignmentDescID.Default.(func() uuid.UUID)
	chatmessageMixin := schema.ChatMessage{}.Mixin()
	chatmessageMixinFields0 := chatmessageMixin[0].Fields()
	_ = chatmessageMixinFields0
	chatmessageMixinFields1 := chatmessageMixin[1].Fields()
	_ = chatmessageMixinFields1
	chatmessageFields := schema.ChatMessage{}.Fields()
	_ = chatmessageFields
	// chatmessageDescCreatedAt is the schema descriptor for created_at field.
	chatmessageDescCreatedAt := chatmessageMixinFields1[0].Descriptor()
	// chatmessage.DefaultCreatedAt holds the default value on creation for the created_at field.
	chatmessage.DefaultCreatedAt = chatmessageDescCreatedAt.Default.(func() time.Time)
	// chatmessageDescContent is the schema descriptor for content field.
	chatmessageDescContent := chatmessageFields[3].Descriptor()
	// chatmessage.ContentValidator is a validator for the "content" field. It is called by the builders before save.
	chatmessage.ContentValidator = chatmessageDescContent.Validators[0].(func(string) error)
	// chatmessageDescID is the schema descriptor for id field.
	chatmessageDescID := chatmessageMixinFields0[0].Descriptor()
	// chatmessage.DefaultID holds the default value on creation for the id field.
	chatmessage.DefaultID = chatmessageDescID.Default.(func() uuid.UUID)
	chatroomMixin := schema.ChatRoom{}.Mixin()
	chatroomMixinFields0 := chatroomMixin[0].Fields()
	_ = chatroomMixinFields0
	chatroomMixinFields1 := chatroomMixin[1].Fields()
	_ = chatroomMixinFields1
	chatroomFields := schema.ChatRoom{}.Fields()
	_ = chatroomFields
	// chatroomDescCreatedAt is the schema descriptor for created_at field.
	chatroomDescCreatedAt := chatroomMixinFields1[0].Descriptor()
	// chatroom.DefaultCreatedAt holds the default value on creation for the created_at field.
	chatroom.DefaultCreatedAt = chatroomDescCreatedAt.Default.(func() time.Time)
	// chatroomDescID is the schema descriptor for id field.
	chatroomDescID := chatroomMixinFields0[0].Descriptor()
	// chatroom.DefaultID holds the default value on creation for the id field.
	chatroom.DefaultID = chatroomDescID.Default.(func() uuid.UUID)
	doctorMixin := schema.Doctor{}.Mixin()
	doctorMixinFields0 := doctorMixin[0].Fields()
	_ = doctorMixinFields0
	doctorMixinFields1 := doctorMixin[1].Fields()
	_ = doctorMixinFields1
	doctorFields := schema.Doctor{}.Fields()
	_ = doctorFields
	// doctorDescCreatedAt is the schema descriptor for created_at field.
	doctorDescCreatedAt := doctorMixinFields1[0].Descriptor()
	// doctor.DefaultCreatedAt holds the default value on creation for the created_at field.
	doctor.DefaultCreatedAt = doctorDescCreatedAt.Default.(func() time.Time)
	// doctorDescUpdatedAt is the schema descriptor for updated_at field.
	doctorDescUpdatedAt := doctorMixinFields1[1].Descriptor()
	// doctor.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	doctor.DefaultUpdatedAt = doctorDescUpdatedAt.Default.(func() time.Time)
	// doctor.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	doctor.UpdateDefaultUpdatedAt = doctorDescUpdatedAt.UpdateDefault.(func() time.Time)
	// doctorDescSpecialty is the schema descriptor for specialty field.
	doctorDescSpecialty := doctorFields[1].Descriptor()
	// doctor.SpecialtyValidator is a validator for the "specialty" field. It is called by the builders before save.
	doctor.SpecialtyValidator = doctorDescSpecialty.Validators[0].(func(string) error)
	// doctorDescYearsExperience is the schema descriptor for years_experience field.
	doctorDescYearsExperience := doctorFields[3].Descriptor()
	// doctor.DefaultYearsExperience holds the default value on creation for the years_experience field.
	doctor.DefaultYearsExperience = doctorDescYearsExperience.Default.(int)
	// doctor.YearsExperienceValidator is a validator for the "years_experience" field. It is called by the builders before save.
	doctor.YearsExperienceValidator = doctorDescYearsExperience.Validators[0].(func(int) error)
	// doctorDescAcceptingPatients is the schema descriptor for accepting_patients field.
	doctorDescAcceptingPatients := doctorFields[4].Descriptor()
	// doctor.DefaultAcceptingPatients holds the default value on creation for the accepting_patients field.
	doctor.DefaultAcceptingPatients = doctorDescAcceptingPatients.Default.(bool)
	// doctorDescID is the schema descriptor for id field.
	doctorDescID := doctorMixinFields0[0].Descriptor()
	// doctor.DefaultID holds the default value on creation for the id field.
	doctor.DefaultID = doctorDescID.Default.(func() uuid.UUID)
	onboardinginsuranceMixin := schema.OnboardingInsurance{}.Mixin()
	onboardinginsuranceMixinFields0 := onboardinginsuranceMixin[0].Fields()
	_ = onboardinginsuranceMixinFields0
	onboardinginsuranceMixinFields1 := onboardinginsuranceMixin[1].Fields()
	_ = onboardinginsuranceMixinFields1
	onboardinginsuranceFields := schema.OnboardingInsurance{}.Fields()
	_ = onboardinginsuranceFields
	// onboardinginsuranceDescCreatedAt is the schema descriptor for created_at field.
	onboardinginsuranceDescCreatedAt := onboardinginsuranceMixinFields1[0].Descriptor()
	// onboardinginsurance.DefaultCreatedAt holds the default value on creation for the created_at field.
	onboardinginsurance.DefaultCreatedAt = onboardinginsuranceDescCreatedAt.Default.(func() time.Time)
	// onboardinginsuranceDescUpdatedAt is the schema descriptor for updated_at field.
	onboardinginsuranceDescUpdatedAt := onboardinginsuranceMixinFields1[1].Descriptor()
	// onboardinginsurance.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	onboardinginsurance.DefaultUpdatedAt = onboardinginsuranceDescUpdatedAt.Default.(func() time.Time)
	// onboardinginsurance.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	onboardinginsurance.UpdateDefaultUpdatedAt = onboardinginsuranceDescUpdatedAt.UpdateDefault.(func() time.Time)
	// onboardinginsuranceDescProvider is the schema descriptor for provider field.
	onboardinginsuranceDescProvider := onboardinginsuranceFields[1].Descriptor()
	// onboardinginsurance.ProviderValidator is a validator for the "provider" field. It is called by the builders before save.
	onboardinginsurance.ProviderValidator = onboardinginsuranceDescProvider.Validators[0].(func(string) error)
	// onboardinginsuranceDescID is the schema descriptor for id field.
	onboardinginsuranceDescID := onboardinginsuranceMixinFields0[0].Descriptor()
	// onboardinginsurance.DefaultID holds the default value on creation for the id field.
	onboardinginsurance.DefaultID = onboardinginsuranceDescID.Default.(func() uuid.UUID)
	onboardingmedicalMixin := schema.OnboardingMedical{}.Mixin()
	onboardingmedicalMixinFields0 := onboardingmedicalMixin[0].Fields()
	_ = onboardingmedicalMixinFields0
	onboardingmedicalMixinFields1 := onboardingmedicalMixin[1].Fields()
	_ = onboardingmedicalMixinFields1
	onboardingmedicalFields := schema.OnboardingMedical{}.Fields()
	_ = onboardingmedicalFields
	// onboardingmedicalDescCreatedAt is the schema descriptor for created_at field.
	onboardingmedicalDescCreatedAt := onboardingmedicalMixinFields1[0].Descriptor()
	// onboardingmedical.DefaultCreatedAt holds the default value on creation for the created_at field.
	onboardingmedical.DefaultCreatedAt = onboardingmedicalDescCreatedAt.Default.(func() time.Time)
	// onboardingmedicalDescUpdatedAt is the schema descriptor for updated_at field.
	onboardingmedicalDescUpdatedAt := onboardingmedicalMixinFields1[1].Descriptor()
	// onboardingmedical.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	onboardingmedical.DefaultUpdatedAt = onboardingmedicalDescUpdatedAt.Default.(func() time.Time)
	// onboardingmedical.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	onboardingmedical.UpdateDefaultUpdatedAt = onboardingmedicalDescUpdatedAt.UpdateDefault.(func() time.Time)
	// onboardingmedicalDescPrimaryConcern is the schema descriptor for primary_concern field.
	onboardingmedicalDescPrimaryConcern := onboardingmedicalFields[4].Descriptor()
	// onboardingmedical.PrimaryConcernValidator is a validator for the "primary_concern" field. It is called by the builders before save.
	onboardingmedical.PrimaryConcernValidator = onboardingmedicalDescPrimaryConcern.Validators[0].(func(string) error)
	// onboardingmedicalDescID is the schema descriptor for id field.
	onboardingmedicalDescID := onboardingmedicalMixinFields0[0].Descriptor()
	// onboardingmedical.DefaultID holds the default value on creation for the id field.
	onboardingmedical.DefaultID = onboardingmedicalDescID.Default.(func() uuid.UUID)
	onboardingpersonalMixin := schema.OnboardingPersonal{}.Mixin()
	onboardingpersonalMixinFields0 := onboardingpersonalMixin[0].Fields()
	_ = onboardingpersonalMixinFields0
	onboardingpersonalMixinFields1 := onboardingpersonalMixin[1].Fields()
	_ = onboardingpersonalMixinFields1
	onboardingpersonalFields := schema.OnboardingPersonal{}.Fields()
	_ = onboardingpersonalFields
	// onboardingpersonalDescCreatedAt is the schema descriptor for created_at field.
	onboardingpersonalDescCreatedAt := onboardingpersonalMixinFields1[0].Descriptor()
	// onboardingpersonal.DefaultCreatedAt holds the default value on creation for the created_at field.
	onboardingpersonal.DefaultCreatedAt = onboardingpersonalDescCreatedAt.Default.(func() time.Time)
	// onboardingpersonalDescUpdatedAt is the schema descriptor for updated_at field.
	onboardingpersonalDescUpdatedAt := onboardingpersonalMixinFields1[1].Descriptor()
	// onboardingpersonal.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	onboardingpersonal.DefaultUpdatedAt = onboardingpersonalDescUpdatedAt.Default.(func() time.Time)
	// onboardingpersonal.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	onboardingpersonal.UpdateDefaultUpdatedAt = onboardingpersonalDescUpdatedAt.UpdateDefault.(func() time.Time)
	// onboardingpersonalDescPhone is the schema descriptor for phone field.
	onboardingpersonalDescPhone := onboardingpersonalFields[3].Descriptor()
	// onboardingpersonal.PhoneValidator is a validator for the "phone" field. It is called by the builders before save.
	onboardingpersonal.PhoneValidator = onboardingpersonalDescPhone.Validators[0].(func(string) error)
	// onboardingpersonalDescAddress is the schema descriptor for address field.
	onboardingpersonalDescAddress := onboardingpersonalFields[4].Descriptor()
	// onboardingpersonal.AddressValidator is a validator for the "address" field. It is called by the builders before save.
	onboardingpersonal.AddressValidator = onboardingpersonalDescAddress.Validators[0].(func(string) error)
	// onboardingpersonalDescID is the schema descriptor for id field.
	onboardingpersonalDescID := onboardingpersonalMixinFields0[0].Descriptor()
	// onboardingpersonal.DefaultID holds the default value on creation for the id field.
	onboardingpersonal.DefaultID = onboardingpersonalDescID.Default.(func() uuid.UUID)
	onlinestatusMixin := schema.OnlineStatus{}.Mixin()
	onlinestatusMixinFields0 := onlinestatusMixin[0].Fields()
	_ = onlinestatusMixinFields0
	onlinestatusFields := schema.OnlineStatus{}.Fields()
	_ = onlinestatusFields
	// onlinestatusDescOnline is the schema descriptor for online field.
	onlinestatusDescOnline := onlinestatusFields[1].Descriptor()
	// onlinestatus.DefaultOnline holds the default value on creation for the online field.
	onlinestatus.DefaultOnline = onlinestatusDescOnline.Default.(bool)
	// onlinestatusDescID is the schema descriptor for id field.
	onlinestatusDescID := onlinestatusMixinFields0[0].Descriptor()
	// onlinestatus.DefaultID holds the default value on creation for the id field.
	onlinestatus.DefaultID = onlinestatusDescID.Default.(func() uuid.UUID)
	patientMixin := schema.Patient{}.Mixin()
	patientMixinFields0 := patientMixin[0].Fields()
	_ = patientMixinFields0
	patientMixinFields1 := patientMixin[1].Fields()
	_ = patientMixinFields1
	patientFields := schema.Patient{}.Fields()
	_ = patientFields
	// patientDescCreatedAt is the schema descriptor for created_at field.
	patientDescCreatedAt := patientMixinFields1[0].Descriptor()
	// patient.DefaultCreatedAt holds the default value on creation for the created_at field.
	patient.DefaultCreatedAt = patientDescCreatedAt.Default.(func() time.Time)
	// patientDescUpdatedAt is the schema descriptor for updated_at field.
	patientDescUpdatedAt := patientMixinFields1[1].Descriptor()
	// patient.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	patient.DefaultUpdatedAt = patientDescUpdatedAt.Default.(func() time.Time)
	// patient.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	patient.UpdateDefaultUpdatedAt = patientDescUpdatedAt.UpdateDefault.(func() time.Time)
	// patientDescOnboardingStep is the schema descriptor for onboarding_step field.
	patientDescOnboardingStep := patientFields[1].Descriptor()
	// patient.DefaultOnboardingStep holds the default value on creation for the onboarding_step field.
	patient.DefaultOnboardingStep = patientDescOnboardingStep.Default.(int)
	// patient.OnboardingStepValidator is a validator for the "onboarding_step" field. It is called by the builders before save.
	patient.OnboardingStepValidator = func() func(int) error {
		validators := patientDescOnboardingStep.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(onboarding_step int) error {
			for _, fn := range fns {
				if err := fn(onboarding_step); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// patientDescOnboardingCompleted is the schema descriptor for onboarding_completed field.
	patientDescOnboardingCompleted := patientFields[2].Descriptor()
	// patient.DefaultOnboardingCompleted holds the default value on creation for the onboarding_completed field.
	patient.DefaultOnboardingCompleted = patientDescOnboardingCompleted.Default.(bool)
	// patientDescID is the schema descriptor for id field.
	patientDescID := patientMixinFields0[0].Descriptor()
	// patient.DefaultID holds the default value on creation for the id field.
	patient.DefaultID = patientDescID.Default.(func() uuid.UUID)
	userMixin := schema.User{}.Mixin()
	userMixinFields0 := userMixin[0].Fields()
	_ = userMixinFields0
	userMixinFields1 := userMixin[1].Fields()
	_ = userMixinFields1
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userMixinFields1[0].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userMixinFields1[1].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[0].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = userDescEmail.Validators[0].(func(string) error)
	// userDescFirstName is the schema descriptor for first_name field.
	userDescFirstName := userFields[3].Descriptor()
	// user.FirstNameValidator is a validator for the "first_name" field. It is called by the builders before save.
	user.FirstNameValidator = userDescFirstName.Validators[0].(func(string) error)
	// userDescLastName is the schema descriptor for last_name field.
	userDescLastName := userFields[4].Descriptor()
	// user.LastNameValidator is a validator for the "last_name" field. It is called by the builders before save.
	user.LastNameValidator = userDescLastName.Validators[0].(func(string) error)
	// userDescID is the schema descriptor for id field.
	userDescID := userMixinFields0[0].Descriptor()
	// user.DefaultID holds the default value on creation for the id field.
	user.DefaultID = userDescID.Default.(func() uuid.UUID)
}
