/*
 * Copyright (c) 2023-present unTill Software Development Group B.V.
 */

package schemas

import "slices"

// # Implements:
//   - UnionGroup
type unionGroup struct {
	name    string
	members []string
}

func newUnionGroup(name string, members []string) *unionGroup {
	return &unionGroup{
		name:    name,
		members: slices.Clone(members),
	}
}

func (u *unionGroup) Name() string { return u.name }

func (u *unionGroup) Members() []string { return slices.Clone(u.members) }

func (u *unionGroup) MemberCount() int { return len(u.members) }

func (u *unionGroup) HasMember(name string) bool {
	return slices.Contains(u.members, name)
}
