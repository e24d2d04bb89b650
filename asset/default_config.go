package asset

// DefaultConfig is the configuration used when no file is found
const DefaultConfig = `
world:
  width: 0          # 0 follows the terminal width
  height: 8         # rows of the strip, sky included
  ground_height: 2  # rows of ground under the paws
  fps: 30
  biome: ""         # meadow, mountain, forest, desert, snow; empty picks one

sprite:
  sheet: ""         # PNG sheet path, empty uses the built-in text sheet
  columns: 8
  rows: 9
  facing: left
  fur: ""           # empty picks a random coat
  states:
    idle: {frames: 6, row: 0}
    idle_and_bark: {frames: 8, row: 0}
    walk: {frames: 8, row: 4}
    walk_and_bark: {frames: 8, row: 6}
    sit: {frames: 6, row: 1}
    sit_and_bark: {frames: 8, row: 1}
    lie_down: {frames: 6, row: 2}
    lie_down_and_bark: {frames: 8, row: 2}
    run: {frames: 8, row: 3}
    run_and_bark: {frames: 8, row: 5}
    stand: {frames: 6, row: 7}
    stand_and_bark: {frames: 8, row: 7}
    sleep: {frames: 4, row: 8}

audio:
  enabled: true
  volume: 0.6

# duration is [min, max] seconds; speed is cells per second, 6 when omitted;
# animation_interval is seconds per frame, 0.1 when omitted
states:
  idle:
    duration: [2, 10]
    speed: 0
    transitions:
      idle: 0.1
      idle_and_bark: 0.1
      walk: 0.1
      walk_and_bark: 0.1
      sit: 0.1
      sit_and_bark: 0.1
      lie_down: 0.1
      lie_down_and_bark: 0.0
      run: 0.1
      run_and_bark: 0.1
      stand: 0.05
      stand_and_bark: 0.05
      sleep: 0.0
  idle_and_bark:
    duration: [2, 10]
    speed: 0
    transitions:
      idle: 0.1
      idle_and_bark: 0.1
      walk: 0.15
      walk_and_bark: 0.1
      sit: 0.15
      sit_and_bark: 0.1
      lie_down: 0.0
      lie_down_and_bark: 0.0
      run: 0.1
      run_and_bark: 0.05
      stand: 0.1
      stand_and_bark: 0.05
      sleep: 0.0
  walk:
    duration: [2, 20]
    transitions:
      idle: 0.1
      idle_and_bark: 0.1
      walk: 0.1
      walk_and_bark: 0.1
      sit: 0.15
      sit_and_bark: 0.1
      lie_down: 0.0
      lie_down_and_bark: 0.0
      run: 0.2
      run_and_bark: 0.05
      stand: 0.05
      stand_and_bark: 0.05
      sleep: 0.0
  walk_and_bark:
    duration: [3, 10]
    transitions:
      idle: 0.1
      idle_and_bark: 0.1
      walk: 0.1
      walk_and_bark: 0.1
      sit: 0.15
      sit_and_bark: 0.1
      lie_down: 0.0
      lie_down_and_bark: 0.0
      run: 0.2
      run_and_bark: 0.05
      stand: 0.05
      stand_and_bark: 0.05
      sleep: 0.0
  sit:
    duration: [5, 15]
    speed: 0
    transitions:
      idle: 0.1
      idle_and_bark: 0.05
      walk: 0.1
      walk_and_bark: 0.05
      sit: 0.1
      sit_and_bark: 0.05
      lie_down: 0.25
      lie_down_and_bark: 0.05
      run: 0.05
      run_and_bark: 0.0
      stand: 0.05
      stand_and_bark: 0.05
      sleep: 0.1
  sit_and_bark:
    duration: [5, 10]
    speed: 0
    transitions:
      idle: 0.1
      idle_and_bark: 0.05
      walk: 0.1
      walk_and_bark: 0.05
      sit: 0.1
      sit_and_bark: 0.05
      lie_down: 0.25
      lie_down_and_bark: 0.05
      run: 0.05
      run_and_bark: 0.0
      stand: 0.05
      stand_and_bark: 0.05
      sleep: 0.1
  lie_down:
    duration: [10, 20]
    speed: 0
    transitions:
      idle: 0.1
      idle_and_bark: 0.1
      walk: 0.1
      walk_and_bark: 0.1
      sit: 0.2
      sit_and_bark: 0.05
      lie_down: 0.1
      lie_down_and_bark: 0.05
      run: 0.1
      run_and_bark: 0.0
      stand: 0.0
      stand_and_bark: 0.0
      sleep: 0.1
  lie_down_and_bark:
    duration: [5, 10]
    speed: 0
    transitions:
      idle: 0.1
      idle_and_bark: 0.1
      walk: 0.1
      walk_and_bark: 0.1
      sit: 0.2
      sit_and_bark: 0.05
      lie_down: 0.1
      lie_down_and_bark: 0.05
      run: 0.1
      run_and_bark: 0.0
      stand: 0.0
      stand_and_bark: 0.0
      sleep: 0.1
  run:
    duration: [3, 15]
    speed: 12
    transitions:
      idle: 0.35
      idle_and_bark: 0.05
      walk: 0.3
      walk_and_bark: 0.05
      sit: 0.0
      sit_and_bark: 0.0
      lie_down: 0.0
      lie_down_and_bark: 0.0
      run: 0.2
      run_and_bark: 0.05
      stand: 0.0
      stand_and_bark: 0.0
      sleep: 0.0
  run_and_bark:
    duration: [3, 15]
    speed: 12
    transitions:
      idle: 0.35
      idle_and_bark: 0.05
      walk: 0.3
      walk_and_bark: 0.05
      sit: 0.0
      sit_and_bark: 0.0
      lie_down: 0.0
      lie_down_and_bark: 0.0
      run: 0.2
      run_and_bark: 0.05
      stand: 0.0
      stand_and_bark: 0.0
      sleep: 0.0
  stand:
    duration: [3, 10]
    speed: 0
    transitions:
      idle: 0.1
      idle_and_bark: 0.1
      walk: 0.1
      walk_and_bark: 0.1
      sit: 0.1
      sit_and_bark: 0.05
      lie_down: 0.1
      lie_down_and_bark: 0.05
      run: 0.1
      run_and_bark: 0.0
      stand: 0.05
      stand_and_bark: 0.05
      sleep: 0.1
  stand_and_bark:
    duration: [3, 10]
    speed: 0
    transitions:
      idle: 0.1
      idle_and_bark: 0.1
      walk: 0.1
      walk_and_bark: 0.1
      sit: 0.1
      sit_and_bark: 0.05
      lie_down: 0.1
      lie_down_and_bark: 0.05
      run: 0.1
      run_and_bark: 0.0
      stand: 0.05
      stand_and_bark: 0.05
      sleep: 0.1
  sleep:
    duration: [10, 30]
    speed: 0
    animation_interval: 0.2
    transitions:
      idle: 0.1
      idle_and_bark: 0.1
      walk: 0.0
      walk_and_bark: 0.0
      sit: 0.3
      sit_and_bark: 0.1
      lie_down: 0.3
      lie_down_and_bark: 0.1
      run: 0.0
      run_and_bark: 0.0
      stand: 0.0
      stand_and_bark: 0.0
      sleep: 0.0
`
