package asset

// Grid of the built-in sheet
const (
	DogSheetColumns = 8
	DogSheetRows    = 9
)

// DogSheet is the built-in text sprite sheet of 10x4 cell frames, facing left
// Rows: idle, sit, lie down, run, walk, run and bark, walk and bark, stand, sleep
// Bark frames occupy columns 6 and 7 of the posture rows
const DogSheet = `
  __        __        __        __        __        __      ! __        __
o'  \____ o'  \____ o'  \____ o'  \____ o'  \____ o'  \____ <'  \____ o'  \____
 \_     )~ \_     )/ \_     )- \_     )\ \_     )~ \_     )- \_     )/ \_     )\
   ||  ||    ||  ||    ||  ||    ||  ||    ||  ||    ||  ||    ||  ||    ||  ||
  __        __        __        __        __        __      ! __        __
o'  \     o'  \     o'  \     o'  \     o'  \     o'  \     <'  \     o'  \
 \_  \__   \_  \__   \_  \__   \_  \__   \_  \__   \_  \__   \_  \__   \_  \__
  |_|__)~   |_|__)/   |_|__)-   |_|__)\   |_|__)~   |_|__)-   |_|__)/   |_|__)\
                                                            !
  __        __        __        __        __        __        __        __
o'  \_____o'  \_____o'  \_____o'  \_____o'  \_____o'  \_____<'  \_____o'  \_____
\_,__,__)~\_,__,__)/\_,__,__)-\_,__,__)\\_,__,__)~\_,__,__)-\_,__,__)/\_,__,__)\
  __        __        __        __        __        __        __        __
o'  \____ o'  \____ o'  \____ o'  \____ o'  \____ o'  \____ o'  \____ o'  \____
 \_     )- \_     )- \_     )- \_     )- \_     )- \_     )- \_     )- \_     )-
  /  \/  \   \/  \/   //   \\    ||  ||   /  \/  \   \/  \/   //   \\    ||  ||
  __        __        __        __        __        __        __        __
o'  \____ o'  \____ o'  \____ o'  \____ o'  \____ o'  \____ o'  \____ o'  \____
 \_     )~ \_     )/ \_     )- \_     )\ \_     )~ \_     )- \_     )/ \_     )\
   ||  ||    /|  |\    ||  ||    |\  /|    ||  ||    /|  |\    ||  ||    |\  /|
! __        __      ! __        __      ! __        __      ! __        __
<'  \____ o'  \____ <'  \____ o'  \____ <'  \____ o'  \____ <'  \____ o'  \____
 \_     )- \_     )- \_     )- \_     )- \_     )- \_     )- \_     )- \_     )-
  /  \/  \   \/  \/   //   \\    ||  ||   /  \/  \   \/  \/   //   \\    ||  ||
! __        __      ! __        __      ! __        __      ! __        __
<'  \____ o'  \____ <'  \____ o'  \____ <'  \____ o'  \____ <'  \____ o'  \____
 \_     )~ \_     )/ \_     )- \_     )\ \_     )~ \_     )- \_     )/ \_     )\
   ||  ||    /|  |\    ||  ||    |\  /|    ||  ||    /|  |\    ||  ||    |\  /|
  __        __        __        __        __        __      ! __        __
o'  \____ o'  \____ o'  \____ o'  \____ o'  \____ o'  \____ <'  \____ o'  \____
 \_     )~ \_     )/ \_     )- \_     )\ \_     )~ \_     )- \_     )/ \_     )\
  _||  ||_  _||  ||_  _||  ||_  _||  ||_  _||  ||_  _||  ||_  _||  ||_  _||  ||_
     z         zZ        zZz        Zz       z         zZ        zZz        Zz
  __        __        __        __        __        __        __        __
-'  \_____-'  \_____-'  \_____-'  \_____-'  \_____-'  \_____-'  \_____-'  \_____
\_,__,__)_\_,__,__)_\_,__,__)_\_,__,__)_\_,__,__)_\_,__,__)_\_,__,__)_\_,__,__)_
`
