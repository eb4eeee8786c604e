// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Assignment is the predicate function for assignment builders.
type Assignment func(*sql.Selector)

// ChatMessage is the predicate function for chatmessage builders.
type ChatMessage func(*sql.Selector)

// ChatRoom is the predicate function for chatroom builders.
type ChatRoom func(*sql.Selector)

// Doctor is the predicate function for doctor builders.
type Doctor func(*sql.Selector)

// OnboardingInsurance is the predicate function for onboardinginsurance builders.
type OnboardingInsurance func(*sql.Selector)

// OnboardingMedical is the predicate function for onboardingmedical builders.
type OnboardingMedical func(*sql.Selector)

// OnboardingPersonal is the predicate function for onboardingpersonal builders.
type OnboardingPersonal func(*sql.Selector)

// OnlineStatus is the predicate function for onlinestatus builders.
type OnlineStatus func(*sql.Selector)

// Patient is the predicate function for patient builders.
type Patient func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)
