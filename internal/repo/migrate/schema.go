// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AssignmentsColumns holds the columns for the "assignments" table.
	AssignmentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "patient_id", Type: field.TypeUUID},
		{Name: "doctor_id", Type: field.TypeUUID},
		{Name: "active", Type: field.TypeBool, Default: true},
		{Name: "assigned_at", Type: field.TypeTime, Nullable: true},
	}
	// AssignmentsTable holds the schema information for the "assignments" table.
	AssignmentsTable = &schema.Table{
		Name:       "assignments",
		Columns:    AssignmentsColumns,
		PrimaryKey: []*schema.Column{AssignmentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "assignment_patient_id_doctor_id",
				Unique:  true,
				Columns: []*schema.Column{AssignmentsColumns[3], AssignmentsColumns[4]},
			},
			{
				Name:    "assignment_patient_id_active",
				Unique:  false,
				Columns: []*schema.Column{AssignmentsColumns[3], AssignmentsColumns[5]},
			},
			{
				Name:    "assignment_doctor_id_active",
				Unique:  false,
				Columns: []*schema.Column{AssignmentsColumns[4], AssignmentsColumns[5]},
			},
		},
	}
	// ChatMessagesColumns holds the columns for the "chat_messages" table.
	ChatMessagesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "room_id", Type: field.TypeUUID},
		{Name: "sender_id", Type: field.TypeUUID},
		{Name: "sender_role", Type: field.TypeEnum, Enums: []string{"patient", "doctor"}},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "read_at", Type: field.TypeTime, Nullable: true},
	}
	// ChatMessagesTable holds the schema information for the "chat_messages" table.
	ChatMessagesTable = &schema.Table{
		Name:       "chat_messages",
		Columns:    ChatMessagesColumns,
		PrimaryKey: []*schema.Column{ChatMessagesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "chatmessage_room_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ChatMessagesColumns[2], ChatMessagesColumns[1]},
			},
			{
				Name:    "chatmessage_sender_id",
				Unique:  false,
				Columns: []*schema.Column{ChatMessagesColumns[3]},
			},
		},
	}
	// ChatRoomsColumns holds the columns for the "chat_rooms" table.
	ChatRoomsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "patient_id", Type: field.TypeUUID},
		{Name: "doctor_id", Type: field.TypeUUID},
		{Name: "last_message_at", Type: field.TypeTime, Nullable: true},
	}
	// ChatRoomsTable holds the schema information for the "chat_rooms" table.
	ChatRoomsTable = &schema.Table{
		Name:       "chat_rooms",
		Columns:    ChatRoomsColumns,
		PrimaryKey: []*schema.Column{ChatRoomsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "chatroom_patient_id_doctor_id",
				Unique:  true,
				Columns: []*schema.Column{ChatRoomsColumns[2], ChatRoomsColumns[3]},
			},
			{
				Name:    "chatroom_patient_id",
				Unique:  false,
				Columns: []*schema.Column{ChatRoomsColumns[2]},
			},
			{
				Name:    "chatroom_doctor_id",
				Unique:  false,
				Columns: []*schema.Column{ChatRoomsColumns[3]},
			},
		},
	}
	// DoctorsColumns holds the columns for the "doctors" table.
	DoctorsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "specialty", Type: field.TypeString, Size: 255},
		{Name: "bio", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "years_experience", Type: field.TypeInt, Default: 0},
		{Name: "accepting_patients", Type: field.TypeBool, Default: true},
		{Name: "user_id", Type: field.TypeUUID},
	}
	// DoctorsTable holds the schema information for the "doctors" table.
	DoctorsTable = &schema.Table{
		Name:       "doctors",
		Columns:    DoctorsColumns,
		PrimaryKey: []*schema.Column{DoctorsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "doctors_users_user",
				Columns:    []*schema.Column{DoctorsColumns[7]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "doctor_user_id",
				Unique:  true,
				Columns: []*schema.Column{DoctorsColumns[7]},
			},
			{
				Name:    "doctor_accepting_patients",
				Unique:  false,
				Columns: []*schema.Column{DoctorsColumns[6]},
			},
		},
	}
	// OnboardingInsurancesColumns holds the columns for the "onboarding_insurances" table.
	OnboardingInsurancesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "patient_id", Type: field.TypeUUID, Unique: true},
		{Name: "provider", Type: field.TypeString, Size: 255},
		{Name: "member_id_encrypted", Type: field.TypeString},
		{Name: "preferred_doctor_id", Type: field.TypeUUID, Nullable: true},
	}
	// OnboardingInsurancesTable holds the schema information for the "onboarding_insurances" table.
	OnboardingInsurancesTable = &schema.Table{
		Name:       "onboarding_insurances",
		Columns:    OnboardingInsurancesColumns,
		PrimaryKey: []*schema.Column{OnboardingInsurancesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "onboardinginsurance_patient_id",
				Unique:  true,
				Columns: []*schema.Column{OnboardingInsurancesColumns[3]},
			},
		},
	}
	// OnboardingMedicalsColumns holds the columns for the "onboarding_medicals" table.
	OnboardingMedicalsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "patient_id", Type: field.TypeUUID, Unique: true},
		{Name: "allergies", Type: field.TypeJSON, Nullable: true},
		{Name: "conditions", Type: field.TypeJSON, Nullable: true},
		{Name: "medications", Type: field.TypeJSON, Nullable: true},
		{Name: "primary_concern", Type: field.TypeString, Size: 2147483647},
	}
	// OnboardingMedicalsTable holds the schema information for the "onboarding_medicals" table.
	OnboardingMedicalsTable = &schema.Table{
		Name:       "onboarding_medicals",
		Columns:    OnboardingMedicalsColumns,
		PrimaryKey: []*schema.Column{OnboardingMedicalsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "onboardingmedical_patient_id",
				Unique:  true,
				Columns: []*schema.Column{OnboardingMedicalsColumns[3]},
			},
		},
	}
	// OnboardingPersonalsColumns holds the columns for the "onboarding_personals" table.
	OnboardingPersonalsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "patient_id", Type: field.TypeUUID, Unique: true},
		{Name: "date_of_birth", Type: field.TypeTime},
		{Name: "gender", Type: field.TypeEnum, Enums: []string{"male", "female", "other", "prefer_not_to_say"}},
		{Name: "phone", Type: field.TypeString, Size: 20},
		{Name: "address", Type: field.TypeString, Size: 500},
	}
	// OnboardingPersonalsTable holds the schema information for the "onboarding_personals" table.
	OnboardingPersonalsTable = &schema.Table{
		Name:       "onboarding_personals",
		Columns:    OnboardingPersonalsColumns,
		PrimaryKey: []*schema.Column{OnboardingPersonalsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "onboardingpersonal_patient_id",
				Unique:  true,
				Columns: []*schema.Column{OnboardingPersonalsColumns[3]},
			},
		},
	}
	// OnlineStatusColumns holds the columns for the "online_status" table.
	OnlineStatusColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "user_id", Type: field.TypeUUID, Unique: true},
		{Name: "online", Type: field.TypeBool, Default: false},
		{Name: "last_seen", Type: field.TypeTime, Nullable: true},
	}
	// OnlineStatusTable holds the schema information for the "online_status" table.
	OnlineStatusTable = &schema.Table{
		Name:       "online_status",
		Columns:    OnlineStatusColumns,
		PrimaryKey: []*schema.Column{OnlineStatusColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "onlinestatus_user_id",
				Unique:  true,
				Columns: []*schema.Column{OnlineStatusColumns[1]},
			},
		},
	}
	// PatientsColumns holds the columns for the "patients" table.
	PatientsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "onboarding_step", Type: field.TypeInt, Default: 0},
		{Name: "onboarding_completed", Type: field.TypeBool, Default: false},
		{Name: "user_id", Type: field.TypeUUID},
		{Name: "assigned_doctor_id", Type: field.TypeUUID, Nullable: true},
	}
	// PatientsTable holds the schema information for the "patients" table.
	PatientsTable = &schema.Table{
		Name:       "patients",
		Columns:    PatientsColumns,
		PrimaryKey: []*schema.Column{PatientsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "patients_users_user",
				Columns:    []*schema.Column{PatientsColumns[5]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "patients_doctors_assigned_doctor",
				Columns:    []*schema.Column{PatientsColumns[6]},
				RefColumns: []*schema.Column{DoctorsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "patient_user_id",
				Unique:  true,
				Columns: []*schema.Column{PatientsColumns[5]},
			},
			{
				Name:    "patient_assigned_doctor_id",
				Unique:  false,
				Columns: []*schema.Column{PatientsColumns[6]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "email", Type: field.TypeString, Unique: true, Size: 255},
		{Name: "password_hash", Type: field.TypeString},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"patient", "doctor"}},
		{Name: "first_name", Type: field.TypeString, Size: 100},
		{Name: "last_name", Type: field.TypeString, Size: 100},
		{Name: "last_login_at", Type: field.TypeTime, Nullable: true},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AssignmentsTable,
		ChatMessagesTable,
		ChatRoomsTable,
		DoctorsTable,
		OnboardingInsurancesTable,
		OnboardingMedicalsTable,
		OnboardingPersonalsTable,
		OnlineStatusTable,
		PatientsTable,
		UsersTable,
	}
)

func init() {
	DoctorsTable.ForeignKeys[0].RefTable = UsersTable
	PatientsTable.ForeignKeys[0].RefTable = UsersTable
	PatientsTable.ForeignKeys[1].RefTable = DoctorsTable
}
