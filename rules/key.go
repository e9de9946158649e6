package rules

// ObjectRef identifies a board object for approval-key purposes: its
// closed taxonomy kind name (e.g. "NetLine", "Via", "Pad") and its stable
// UUID string.
type ObjectRef struct {
	Kind string
	UUID string
}

// The functions below build the approval Key for each RuleCheckMessage
// Kind, in the exact child order spec.md §4.F's table specifies.

func KeyMinimumWidthViolation(obj ObjectRef) Key {
	return NewKey(MinimumWidthViolation.String(), obj.Kind, obj.UUID)
}

// CopperFeatureRef is one side of a CopperCopperClearanceViolation pair:
// its layer, net (empty string for netless), and object identity.
type CopperFeatureRef struct {
	Layer string
	Net   string
	Obj   ObjectRef
}

func (c CopperFeatureRef) joinedID() string {
	return c.Layer + ":" + c.Net + ":" + c.Obj.Kind + ":" + c.Obj.UUID
}

// KeyCopperCopperClearanceViolation canonicalizes the pair so the key is
// independent of which side the caller passes as a or b, matching the
// "unordered pair" identity spec.md §4.F's table requires.
func KeyCopperCopperClearanceViolation(a, b CopperFeatureRef) Key {
	first, second := a, b
	if first.joinedID() > second.joinedID() {
		first, second = second, first
	}
	return NewKey(CopperCopperClearanceViolation.String(),
		first.Layer, first.Net, first.Obj.Kind, first.Obj.UUID,
		second.Layer, second.Net, second.Obj.Kind, second.Obj.UUID)
}

func KeyCopperBoardClearanceViolation(obj ObjectRef) Key {
	return NewKey(CopperBoardClearanceViolation.String(), obj.Kind, obj.UUID)
}

func KeyCopperHoleClearanceViolation(owner ObjectRef, holeUUID string) Key {
	return NewKey(CopperHoleClearanceViolation.String(), owner.Kind, owner.UUID, holeUUID)
}

// DrillRef identifies one drilled hole by its owning object and the
// hole's own UUID.
type DrillRef struct {
	Owner    ObjectRef
	HoleUUID string
}

func (d DrillRef) joinedID() string { return d.Owner.Kind + ":" + d.Owner.UUID + ":" + d.HoleUUID }

func KeyDrillDrillClearanceViolation(a, b DrillRef) Key {
	first, second := OrderedPair(a.joinedID(), b.joinedID())
	return NewKey(DrillDrillClearanceViolation.String(), first, second)
}

func KeyDrillBoardClearanceViolation(d DrillRef) Key {
	return NewKey(DrillBoardClearanceViolation.String(), d.Owner.Kind, d.Owner.UUID, d.HoleUUID)
}

func KeyMinimumAnnularRingViolation(obj ObjectRef) Key {
	return NewKey(MinimumAnnularRingViolation.String(), obj.Kind, obj.UUID)
}

func KeyMinimumDrillDiameterViolation(d DrillRef) Key {
	return NewKey(MinimumDrillDiameterViolation.String(), d.Owner.Kind, d.Owner.UUID, d.HoleUUID)
}

func KeyMinimumSlotWidthViolation(d DrillRef) Key {
	return NewKey(MinimumSlotWidthViolation.String(), d.Owner.Kind, d.Owner.UUID, d.HoleUUID)
}

func KeyForbiddenSlot(d DrillRef) Key {
	return NewKey(ForbiddenSlot.String(), d.Owner.Kind, d.Owner.UUID, d.HoleUUID)
}

func KeyInvalidPadConnection(padUUID, layer string) Key {
	return NewKey(InvalidPadConnection.String(), padUUID, layer)
}

func KeyCourtyardOverlap(device1UUID, device2UUID string) Key {
	first, second := OrderedPair(device1UUID, device2UUID)
	return NewKey(CourtyardOverlap.String(), first, second)
}

func KeyOpenBoardOutlinePolygon(deviceUUID, polygonUUID string) Key {
	return NewKey(OpenBoardOutlinePolygon.String(), deviceUUID, polygonUUID)
}

func KeyMissingBoardOutline() Key {
	return NewKey(MissingBoardOutline.String())
}

func KeyMultipleBoardOutlines() Key {
	return NewKey(MultipleBoardOutlines.String())
}

func KeyMinimumBoardOutlineInnerRadiusViolation() Key {
	return NewKey(MinimumBoardOutlineInnerRadiusViolation.String())
}

func KeyMissingDevice(componentUUID string) Key {
	return NewKey(MissingDevice.String(), componentUUID)
}

func KeyDefaultDeviceMismatch(componentUUID string) Key {
	return NewKey(DefaultDeviceMismatch.String(), componentUUID)
}

func KeyMissingConnection(netUUID, endpoint1UUID, endpoint2UUID string) Key {
	first, second := OrderedPair(endpoint1UUID, endpoint2UUID)
	return NewKey(MissingConnection.String(), netUUID, first, second)
}

func KeyEmptyNetSegment(netSegmentUUID string) Key {
	return NewKey(EmptyNetSegment.String(), netSegmentUUID)
}

func KeyUnconnectedJunction(netPointUUID string) Key {
	return NewKey(UnconnectedJunction.String(), netPointUUID)
}
