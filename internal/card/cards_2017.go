package card

func groups2017() []Group {
	return []Group{
		{
			Description: "Like numbers",
			Patterns: []Pattern{
				{
					Description: "FF 1111 DDDD 1111 (any 3 suits)",
					VSuitCount:  3,
					Components: []Component{
						flowers(2), run(VSuit1, 1, 4), vdragon(VDragon2, 4), run(VSuit3, 1, 4),
					},
				},
				{
					Description: "FFF 1111 FFF 1111 (any 2 suits)",
					VSuitCount:  2,
					Components: []Component{
						flowers(3), flowers(3), run(VSuit1, 1, 4), run(VSuit2, 1, 4),
					},
				},
			},
		},
	}
}
