// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package diag

import "fmt"

// ErrType identifies the rule a semantic error comes from. The set is closed;
// the string form is the stable tag shared with editor integrations.
type ErrType int

const (
	ErrNone ErrType = iota
	ErrUnknownObject
	ErrIsNotUnique
	ErrDatabaseName
	ErrDatabaseUsername
	ErrDatabasePassword
	ErrDatabaseDriver
	ErrPropertyName
	ErrIDPropertyName
	ErrIDPropertyValue
	ErrIDPropertyGetter
	ErrIDPropertySetter
	ErrEntityPropertyConstant
	ErrEntityPropertyValue
	ErrEntityPropertyRelationship
	ErrPropertyRelationship
	ErrListTypeAndRelationship
	ErrPropertyRelationshipType
	ErrPropertyTypeAndListType
	ErrConstantAndValue
	ErrConstantAndEncapsulation
	ErrConstantPropertyValue
	ErrListValue
	ErrConstructorUniqueProperties
	ErrConstructorConstantProperty
	ErrMethodName
	ErrMethodTypeInListType
	ErrClassName
	ErrUniquePropertyNames
	ErrNoIDProperty
	ErrMultipleIDProperty
	ErrEmptyConstructor
	ErrDefaultConstructor
	ErrConstructorProperty
	ErrUniqueConstructors
	ErrUniqueMethods
	ErrUniqueClassNames
	ErrEntityRelationships
	ErrEntityRelationshipOwner
	ErrEntityRelationshipType

	errTypeCount
)

var errTypeNames = [errTypeCount]string{
	ErrNone:                        "",
	ErrUnknownObject:               "unknown_object_error",
	ErrIsNotUnique:                 "is_not_unique_error",
	ErrDatabaseName:                "database_name_error",
	ErrDatabaseUsername:            "database_username_error",
	ErrDatabasePassword:            "database_password_error",
	ErrDatabaseDriver:              "database_driver_error",
	ErrPropertyName:                "property_name_error",
	ErrIDPropertyName:              "id_property_name_error",
	ErrIDPropertyValue:             "id_property_value_error",
	ErrIDPropertyGetter:            "id_property_getter_encapsulation_error",
	ErrIDPropertySetter:            "id_property_setter_encapsulation_error",
	ErrEntityPropertyConstant:      "entity_property_constant_error",
	ErrEntityPropertyValue:         "entity_property_value_error",
	ErrEntityPropertyRelationship:  "entity_property_relationship_error",
	ErrPropertyRelationship:        "property_relationship_error",
	ErrListTypeAndRelationship:     "list_type_and_relationship_error",
	ErrPropertyRelationshipType:    "property_relationship_type_error",
	ErrPropertyTypeAndListType:     "property_type_and_list_type_error",
	ErrConstantAndValue:            "constant_and_value",
	ErrConstantAndEncapsulation:    "constant_and_encapsulation_error",
	ErrConstantPropertyValue:       "constant_property_value_error",
	ErrListValue:                   "list_value_error",
	ErrConstructorUniqueProperties: "constructor_unique_properties_error",
	ErrConstructorConstantProperty: "constructor_constant_property_error",
	ErrMethodName:                  "method_name_error",
	ErrMethodTypeInListType:        "method_type_in_list_type_error",
	ErrClassName:                   "class_name_error",
	ErrUniquePropertyNames:         "unique_property_names_error",
	ErrNoIDProperty:                "no_id_property_error",
	ErrMultipleIDProperty:          "multiple_id_property_error",
	ErrEmptyConstructor:            "empty_constructor_error",
	ErrDefaultConstructor:          "default_constructor_error",
	ErrConstructorProperty:         "constructor_property_error",
	ErrUniqueConstructors:          "unique_constructors_error",
	ErrUniqueMethods:               "unique_methods_error",
	ErrUniqueClassNames:            "unique_class_names_error",
	ErrEntityRelationships:         "entity_relationships_error",
	ErrEntityRelationshipOwner:     "entity_relationship_owner_error",
	ErrEntityRelationshipType:      "entity_relationship_type_error",
}

// String returns the wire tag of the error type.
func (t ErrType) String() string {
	if t < 0 || t >= errTypeCount {
		return fmt.Sprintf("ErrType(%d)", int(t))
	}
	return errTypeNames[t]
}

// ParseErrType looks up an error type by its wire tag.
func ParseErrType(s string) (ErrType, bool) {
	for i := ErrType(1); i < errTypeCount; i++ {
		if errTypeNames[i] == s {
			return i, true
		}
	}
	return ErrNone, false
}

// MarshalText implements encoding.TextMarshaler.
func (t ErrType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *ErrType) UnmarshalText(b []byte) error {
	if len(b) == 0 {
		*t = ErrNone
		return nil
	}
	v, ok := ParseErrType(string(b))
	if !ok {
		return fmt.Errorf("unknown error type %q", b)
	}
	*t = v
	return nil
}

// NeedsLineSearch reports whether the offending token may appear on several
// lines, so highlighting has to scan forward from the reported position.
func (t ErrType) NeedsLineSearch() bool {
	switch t {
	case ErrDatabaseName, ErrDatabaseUsername, ErrDatabasePassword, ErrDatabaseDriver,
		ErrNoIDProperty, ErrMultipleIDProperty,
		ErrEntityRelationships, ErrEntityRelationshipOwner, ErrEntityRelationshipType:
		return true
	}
	return false
}
