// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package semantic

import "regexp"

// Rule messages. Every format produces one sentence pair: the offending
// values, then what is allowed.
const (
	msgUnknownObject = `%s! Please ensure that "%s" is a valid grammar object or check for any typos.`
	msgIsNotUnique   = `Please ensure that the "%s" property is unique across all classes. Unfortunately, the JSD-MBRS Generator currently supports only unique properties across all classes.`

	msgUniqueClassNames       = `Class name "%s" already exists! Each class name must be unique.`
	msgDatabaseName           = `%s database name "%s" is not a valid SQL database name! %s`
	msgDatabaseDriver         = `The "%s" database driver dependency is already specified in the Application file and it does not match the provided "%s" database driver! Please either update the database driver in the grammar or modify the existing driver dependency in the Application file.`
	msgDatabaseUsername       = `%s database username "%s" is not a valid SQL database username! %s`
	msgDatabasePassword       = `Provided %s database password "%s" is not a valid SQL database password! %s`
	msgClassName              = `Class name "%s" is not a valid Java class name! %s`
	msgUniquePropertyNames    = `Property name "%s" already exists in the "%s" class! Each property name must be unique within a class.`
	msgNoIDProperty           = `There is no ID property in the "%s" class! An ID property is required.`
	msgMultipleIDProperties   = `"%s" class has more than one ID property (%s)! Only one ID property is allowed.`
	msgEntityRelationshipProp = `Class "%s" is missing a bidirectional relationship with the "%s" class. Both classes must have reciprocal relationships defined.`
	msgEntityRelationshipOwn  = `The relationship between classes "%s" and "%s" is not properly defined. Ensure that each class correctly specifies its owner and non-owner side for the relationship.`
	msgEntityRelationshipType = `The relationship between classes "%s" (%s) and "%s" (%s) is not properly defined. Ensure that each class correctly specifies its relationship type for the relationship.`
	msgEmptyConstructor       = `There is no empty constructor in the "%s" class! An empty and default constructors are required.`
	msgDefaultConstructor     = `There is no default constructor in the "%s" class! An empty and default constructors are required.`
	msgConstructorProperty    = `The "%s" property does not exist in the "%s" class! Only properties defined in the current class can be used in the constructor.`
	msgUniqueConstructors     = `The specific constructor "%s" already exists in the "%s" class! Each constructor must be unique within a class.`
	msgUniqueMethods          = `The method "%s"%s already exists in the "%s" class! Each method within a class must be unique, defined by both method name and property types.`

	msgPropertyName                = `Property name "%s" is not a valid Java variable name! %s`
	msgIDPropertyName              = `"%s" is defined keyword so it cannot be used as a property name! %s`
	msgIDPropertyValue             = `The "%s" property of type "%s" should not have a "const" or "constant" keyword specified and/or value defined! Constant values are not allowed for ID properties.`
	msgIDPropertyGetter            = `The "%s" property of type "%s" requires a getter method to be defined! Getter methods are mandatory for ID properties.`
	msgIDPropertySetter            = `The "%s" property of type "%s" should not have a setter method defined! Setter methods are not allowed for ID properties.`
	msgEntityPropertyConstant      = `The "%s" property of the "%s" class type cannot be declared as a constant! Constant properties cannot have the type "%s".`
	msgEntityPropertyValue         = `The "%s" property of the "%s" class type cannot have a defined value. Only constant properties can have a defined value.`
	msgEntityPropertyRelationship  = `The "%s" property of the "%s" class type must have a relationship! Supported relationships are "1..1" (one-to-one), "1..*" (one-to-many), "*..1" (many-to-one), and "*..*" (many-to-many).`
	msgPropertyRelationship        = `The "%s" property cannot have a relationship since it is not of a appropriate type! Relationships are only supported by types such as lists and classes.`
	msgListTypeAndRelationship     = `The "%s" list property does not support the relationships! Relationships are designed to establish relationships between classes, not for basic data types or collections of basic data types.`
	msgPropertyRelationshipType    = `The "%s" property of the "%s" class type cannot have a "%s" relationship! %s`
	msgPropertyTypeAndListType     = `The "%s" property cannot have both a "%s" property type and "%s" list type simultaneously. Only reference types (objects) such as "Byte", "Short", "Character", "Integer", "Float", "Long", "Double", "Boolean", or "String" can be used.`
	msgConstantAndValue            = `If "const" or "constant" keyword is specified, constant value is mandatory, and vice versa! In this case, %s is missing for "%s".`
	msgConstantAndEncapsulation    = `Constant property "%s" cannot have setter method! Constant properties can only have getter methods.`
	msgConstantPropertyValue       = `Invalid value "%s" for property "%s" of type "%s" (%s)!`
	msgListElements                = `Invalid value "%s" in "%s" %s for property "%s" of type "%s" (%s)!`
	msgConstructorUniqueProperties = `The specified constructor includes the property "%s", which is defined more than once! Constructors cannot include non-unique properties.`
	msgConstructorConstantProperty = `The specified constructor includes the property "%s", which is defined as a constant! Constructors cannot include properties that are constants.`
	msgMethodName                  = `Method name "%s" is not a valid Java method name! %s`
	msgMethodTypeInListType        = `The method type "%s" is not valid for the list type "%s"! Only wrapper types such as "Byte", "Short", "Character", "Integer", "Float", "Long", "Double", "Boolean", or "String" can be used for list methods.`
)

// Explanations appended to naming errors.
const (
	explainClassName        = `To create a valid Java class name, start with an uppercase letter, followed by letters, digit, dollar signs, or underscores. No spaces or special characters like @, !, # are allowed.`
	explainPropertyName     = `To create a valid Java variable name, start with a letter, dollar sign, or underscore, followed by letters (uppercase or lowercase), digits, dollar signs, or underscores. No spaces or special characters like @, !, # are allowed.`
	explainIDPropertyName   = `Use a more specific name such as "%sId".`
	explainDatabaseName     = `To create an appropriate SQL database name, ensure it starts with a letter or underscore and is followed by any combination of letters, numbers, or underscores. No spaces or special characters like @, !, # are allowed.`
	explainDatabaseUsername = `To create a suitable SQL database username, begin with a letter and follow with any combination of letters, numbers, underscores, or hyphens. No spaces or special characters like @, !, # are allowed.`
	explainDatabasePassword = `To create a strong password, ensure it is at least 8 characters long and includes at least one uppercase letter, one lowercase letter, and one digit.`
	explainListRelationship = `Collections of classes support the "1..*" (one-to-many), "*..1" (many-to-one) and "*..*" (many-to-many) relationships.`
	explainOneRelationship  = `A single class reference supports only the "1..1" (one-to-one) relationship.`
)

var (
	classNameRe        = regexp.MustCompile(`^[A-Z][a-zA-Z0-9_$]*$`)
	memberNameRe       = regexp.MustCompile(`^[a-zA-Z_$][a-zA-Z\d_$]*$`)
	databaseNameRe     = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)
	databaseUsernameRe = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_\-]*$`)
)

// validPassword is at least 8 characters of [A-Za-z0-9] with at least one
// upper-case letter, one lower-case letter and one digit.
func validPassword(s string) bool {
	if len(s) < 8 {
		return false
	}
	var upper, lower, digit bool
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c >= 'A' && c <= 'Z':
			upper = true
		case c >= 'a' && c <= 'z':
			lower = true
		case c >= '0' && c <= '9':
			digit = true
		default:
			return false
		}
	}
	return upper && lower && digit
}
