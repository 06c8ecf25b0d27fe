package validator

import (
	"github.com/coregraph/graphql/ast"
	"github.com/coregraph/graphql/graphqlerr"
	"github.com/coregraph/graphql/schema"
)

// AllRules is every validation rule this package ships, in the order
// the teacher's validate.go applies them: structural rules first
// (fragment/operation shape), then type-checking rules.
var AllRules = []Rule{
	RuleExecutableDefinitions,
	RuleSingleFieldSubscriptions,
	RuleLoneAnonymousOperation,
	RuleKnownFragmentNames,
	RuleNoUnusedFragments,
	RuleNoFragmentCycles,
	RulePossibleFragmentSpreads,
	RuleFieldsOnCorrectType,
	RuleLeafFieldSelections,
	RuleKnownArgumentNames,
	RuleUniqueArgumentNames,
	RuleProvidedRequiredArguments,
	RuleKnownDirectives,
	RuleUniqueDirectivesPerLocation,
	RuleKnownTypeNames,
	RuleVariablesAreInputTypes,
	RuleNoUndefinedVariables,
	RuleNoUnusedVariables,
	RuleVariablesInAllowedPosition,
	RuleUniqueVariableNames,
	RuleUniqueFragmentNames,
	RuleUniqueOperationNames,
	RuleOverlappingFieldsCanBeMerged,
	RuleValuesOfCorrectType,
	RuleUniqueInputFieldNames,
}

// Validate walks doc against s with rules (defaulting to AllRules),
// returning every error found. An empty (nil) return means doc is
// valid (spec §4.5).
func Validate(s *schema.Schema, doc *ast.Document, rules ...Rule) graphqlerr.List {
	if rules == nil {
		rules = AllRules
	}
	ctx := NewContext(s, doc)
	visitors := make([]ast.Visitor, 0, len(rules)+1)
	visitors = append(visitors, TrackTypeInfo(ctx))
	for _, r := range rules {
		visitors = append(visitors, r(ctx))
	}
	ast.Walk(ast.Chain(visitors...), doc)
	return ctx.Errors
}
