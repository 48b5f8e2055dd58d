package plan

import (
	"path"

	"github.com/stencil-dev/stencil-cli/internal/features"
)

// BundleRef names a directory of template files under the bundle root.
type BundleRef string

func (b BundleRef) Path() string {
	return string(b)
}

// Plan is the ordered list of template bundles to apply. Later bundles
// overwrite same-path files from earlier ones, so order is part of the
// contract: a project-type variant always follows its common counterpart.
type Plan struct {
	Bundles []BundleRef
}

func commonRef(parts ...string) BundleRef {
	return BundleRef(path.Join(append([]string{"common"}, parts...)...))
}

func typedRef(pt features.ProjectType, parts ...string) BundleRef {
	return BundleRef(path.Join(append([]string{string(pt)}, parts...)...))
}

// rule is one row of the bundle selection table: a predicate over the
// FeatureSet plus the refs it contributes when the predicate holds.
type rule struct {
	when func(features.FeatureSet) bool
	refs func(features.FeatureSet, *Registry) []BundleRef
}

// commonWithVariant returns the common bundle followed by the project-type
// variant, the latter only when it exists in the registry.
func commonWithVariant(feature string) func(features.FeatureSet, *Registry) []BundleRef {
	return func(f features.FeatureSet, reg *Registry) []BundleRef {
		refs := []BundleRef{commonRef(feature)}
		if variant := typedRef(f.ProjectType, feature); reg.Lookup(variant) == Present {
			refs = append(refs, variant)
		}
		return refs
	}
}

// rules is evaluated once, in order, by Build. The order here fixes the
// bundle application order for every run.
var rules = []rule{
	{
		when: func(f features.FeatureSet) bool { return f.Linting },
		refs: commonWithVariant("linting"),
	},
	{
		when: func(f features.FeatureSet) bool { return f.Testing },
		refs: func(f features.FeatureSet, reg *Registry) []BundleRef {
			if f.UseTypeScript() {
				refs := []BundleRef{commonRef("testing", "ts")}
				if variant := typedRef(f.ProjectType, "testing", "ts"); reg.Lookup(variant) == Present {
					refs = append(refs, variant)
				}
				return refs
			}
			// Plain-JS test bundles only exist for some project types.
			if ref := typedRef(f.ProjectType, "testing", "js"); reg.Lookup(ref) == Present {
				return []BundleRef{ref}
			}
			return nil
		},
	},
	{
		when: func(f features.FeatureSet) bool { return f.CI },
		refs: commonWithVariant("ci"),
	},
	{
		when: func(f features.FeatureSet) bool { return f.Security },
		refs: commonWithVariant("security"),
	},
	{
		when: func(f features.FeatureSet) bool { return f.GitHooks },
		refs: commonWithVariant("githooks"),
	},
	{
		when: func(f features.FeatureSet) bool { return f.ServiceWorker },
		refs: func(f features.FeatureSet, reg *Registry) []BundleRef {
			return []BundleRef{typedRef(f.ProjectType, "pwa", f.Language.Short())}
		},
	},
	{
		when: func(f features.FeatureSet) bool { return f.Deployment != features.DeployNone },
		refs: func(f features.FeatureSet, reg *Registry) []BundleRef {
			refs := []BundleRef{commonRef("deploy", string(f.Deployment))}
			if variant := typedRef(f.ProjectType, "deploy", string(f.Deployment)); reg.Lookup(variant) == Present {
				refs = append(refs, variant)
			}
			return refs
		},
	},
}

// Build computes the bundle application plan for a FeatureSet. The result is
// deterministic: identical inputs produce identical plans.
func Build(f features.FeatureSet, reg *Registry) Plan {
	var p Plan
	for _, r := range rules {
		if !r.when(f) {
			continue
		}
		p.Bundles = append(p.Bundles, r.refs(f, reg)...)
	}
	return p
}
