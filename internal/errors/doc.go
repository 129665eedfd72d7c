// Package errors provides the structured errors used across the progression
// engine.
//
// An Error carries a Code, a message and metadata. Wrapping keeps the code and
// metadata of the wrapped error, so a repository NotFound is still NotFound
// after the orchestrator adds its own context:
//
//	out, err := repo.Get(ctx, character.GetInput{ID: id})
//	if err != nil {
//	    return nil, errors.Wrapf(err, "failed to load character %s", id)
//	}
//
// # Reasons
//
// Rule rejections refine their code with a Reason stored under MetaReason.
// Check them with the Is helpers rather than comparing codes:
//
//	if errors.IsInsufficientEP(err) {
//	    // offer a cheaper ability
//	}
//
// Several reasons share FailedPrecondition (a locked catalog, an ineligible
// ability, a second god, an empty grant step), so the code alone does not say
// which rule refused.
//
// # Validation
//
// Config and input checks collect every problem before failing:
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("Dir", cfg.Dir, vb)
//	errors.ValidateNonNegative("total-ep", totalEP, vb)
//	if err := vb.Build(); err != nil {
//	    return nil, errors.Wrap(err, "invalid config")
//	}
//
// # gRPC
//
// ToGRPCError attaches the reason and metadata as an ErrorInfo detail in the
// ErrorDomain domain and FromGRPCError restores them. ExitCode reuses the gRPC
// code numbers as the CLI exit status.
package errors
